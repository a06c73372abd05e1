package signing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK               = "ok"
	resultInvalidPubkey    = "invalid_pubkey"
	resultInvalidSignature = "invalid_signature"
	resultFailed           = "failed"
)

var (
	signatureVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "builder",
			Name:      "signature_verifications_total",
			Help:      "Number of builder message signature verifications, by result.",
		},
		[]string{"result"},
	)
	signaturesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "builder",
			Name:      "signatures_created_total",
			Help:      "Number of builder messages signed.",
		},
	)
)
