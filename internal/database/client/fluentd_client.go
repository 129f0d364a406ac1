package client

import (
	"context"
	"time"

	"roster/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// FluentdClient ships request/response logs over the fluentd forward protocol.
// When no host is configured it stays in noop mode and Post becomes a no-op.
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
}

func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (*FluentdClient, func(), error) {
	prefix := "roster"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	if !config.Fluentd.Enabled() {
		logger.Info("Fluentd disabled, log shipping is off")
		return &FluentdClient{tagPrefix: prefix}, func() {}, nil
	}

	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
	})
	if err != nil {
		return nil, nil, err
	}
	client := &FluentdClient{client: f, tagPrefix: prefix}

	cleanup := func() {
		logger.Info("closing the Fluentd resources")
		if err := client.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return client, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Post sends a record to Fluentd with the given tag suffix.
// fluent-logger-golang doesn't support context cancellation directly;
// ctx is accepted for API symmetry.
func (c *FluentdClient) Post(ctx context.Context, tag string, message any) error {
	if c.client == nil {
		return nil
	}
	return c.client.Post(tag, message)
}
