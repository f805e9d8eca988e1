package workers

import (
	"context"

	"github.com/MKhiriev/go-life-keeper/internal/server"
	"github.com/MKhiriev/go-life-keeper/internal/service"
	"github.com/MKhiriev/go-life-keeper/internal/vault"
)

// SyncEngine runs m until ctx is done, then stops its timer and waits for
// the in-flight drain to return.
func SyncEngine(m *service.SyncManager) Worker {
	return Lifecycle(m.Start, func() error {
		m.Close()
		m.Wait()
		return nil
	})
}

func Monitor(c *service.ConnectivityMonitor) Worker {
	return Lifecycle(func(ctx context.Context) error {
		c.Start(ctx)
		return nil
	}, func() error {
		c.Stop()
		return nil
	})
}

func Vault(s *vault.Service) Worker {
	return Lifecycle(s.Start, func() error {
		err := s.Close()
		s.Engine.Wait()
		return err
	})
}

func Server(s server.Server) Worker {
	return Func(s.RunServer)
}
