//go:build !linux && !darwin

package sysprobe

import "context"

// Services has no init-system integration on this platform.
func (p *SystemProvider) Services(_ context.Context) []ServiceStat {
	p.log.Debug("service listing unsupported on this platform")
	return nil
}
