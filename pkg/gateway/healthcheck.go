package gateway

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// healthyInstances probes every configured routing instance in
// parallel and returns the ones that respond healthy.
func (s *Server) healthyInstances(ctx context.Context) []RoutingInstance {
	p := pool.NewWithResults[*RoutingInstance]()

	for _, instance := range s.Instances {
		p.Go(func() *RoutingInstance {
			if !s.RoutingClient.Healthy(ctx, instance) {
				log.Warn().Str("instance", instance.Identifier).Msg("Routing instance failed health check")
				return nil
			}

			return &instance
		})
	}

	var healthy []RoutingInstance
	for _, instance := range p.Wait() {
		if instance != nil {
			healthy = append(healthy, *instance)
		}
	}

	return healthy
}
