// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "sync"

type op uint8

const (
	opSetKey op = iota + 1
	opEncrypt
	opDecrypt
)

// request is a message sent to the worker. id correlates it with the
// response; the worker never interprets it.
type request struct {
	id   uint64
	op   op
	data []byte // key for opSetKey, plaintext for opEncrypt
	text string // ciphertext for opDecrypt
}

type response struct {
	id   uint64
	data []byte // plaintext for opDecrypt
	text string // ciphertext for opEncrypt
	ok   bool
	err  error
}

// worker owns the session key. Nothing outside this goroutine can read it.
type worker struct {
	requests  <-chan request
	responses chan<- response
	done      <-chan struct{}

	key []byte
	wg  sync.WaitGroup
}

func (w *worker) run() {
	defer func() {
		// wait for in-flight jobs before wiping, they hold copies only
		w.wg.Wait()
		wipe(w.key)
		w.key = nil
	}()

	for {
		select {
		case <-w.done:
			return
		case req := <-w.requests:
			w.handle(req)
		}
	}
}

func (w *worker) handle(req request) {
	if req.op == opSetKey {
		// key changes are ordered with respect to later requests
		wipe(w.key)
		w.key = req.data
		w.reply(response{id: req.id, ok: true})
		return
	}

	var key []byte
	if w.key != nil {
		key = append([]byte(nil), w.key...)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer wipe(key)
		w.reply(process(key, req))
	}()
}

func process(key []byte, req request) response {
	resp := response{id: req.id}
	switch req.op {
	case opEncrypt:
		if key == nil {
			resp.err = ErrNoSessionKey
			return resp
		}
		ct, err := seal(key, req.data)
		if err != nil {
			resp.err = err
			return resp
		}
		resp.text, resp.ok = ct, true
	case opDecrypt:
		if key == nil {
			return resp
		}
		pt, err := open(key, req.text)
		if err != nil {
			return resp
		}
		resp.data, resp.ok = pt, true
	}
	return resp
}

func (w *worker) reply(resp response) {
	select {
	case w.responses <- resp:
	case <-w.done:
	}
}
