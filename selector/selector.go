// Package selector picks the payment processor a request should go to.
package selector

import "github.com/brunolapastina/rinha-de-backend-2025/model"

// slowDefaultMs is the Default response time above which Fallback is
// considered when it is markedly faster.
const slowDefaultMs = 1000

// Select maps a health snapshot to the preferred processor. Default is
// preferred unless it is failing, or it is slow and Fallback answers in less
// than two thirds of its time. When both are failing Fallback is returned;
// the send itself tells the truth.
func Select(s model.HealthSnapshot) model.Processor {
	if s.DefaultFailing {
		return model.ProcessorFallback
	}
	if s.DefaultMinRespTime > slowDefaultMs && 3*s.FallbackMinRespTime < 2*s.DefaultMinRespTime {
		return model.ProcessorFallback
	}
	return model.ProcessorDefault
}
