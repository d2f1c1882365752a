package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pwdkek/alphabet"
	"github.com/pivotal-cf/pwdkek/estimator"
	"github.com/pivotal-cf/pwdkek/metrics"
)

const maxRequestSize = 64 * 1024

type EstimateRequest struct {
	Password string `json:"password"`
}

// EstimateResponse has a null time_to_decode_seconds when unbounded is set.
type EstimateResponse struct {
	Entropy             float64        `json:"entropy"`
	TimeToDecodeSeconds *float64       `json:"time_to_decode_seconds"`
	Unbounded           bool           `json:"unbounded"`
	Tier                estimator.Tier `json:"tier"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type estimateHandler struct {
	logger    lager.Logger
	estimator Estimator

	estimates metrics.Counter
	invalid   metrics.Counter
	timer     metrics.Timer
}

func NewEstimateHandler(logger lager.Logger, est Estimator, emitter metrics.Emitter) http.Handler {
	return &estimateHandler{
		logger:    logger.Session("estimate-handler"),
		estimator: est,
		estimates: emitter.Counter("estimates_total", "Passwords estimated, by tier.", "tier"),
		invalid:   emitter.Counter("invalid_passwords_total", "Passwords rejected for characters outside the alphabet."),
		timer:     emitter.Timer("estimate_duration_seconds", "Time spent estimating one password."),
	}
}

func (h *estimateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("request")

	var request EstimateRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := json.NewDecoder(body).Decode(&request); err != nil {
		logger.Error("invalid-payload", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "request body must be a JSON object with a password"})
		return
	}

	var (
		estimate estimator.Estimate
		err      error
	)
	h.timer.Time(logger, func() {
		estimate, err = h.estimator.Estimate(request.Password)
	})

	if err != nil {
		if errors.Is(err, alphabet.ErrInvalidCharacter) {
			h.invalid.Inc(logger)
			logger.Info("invalid-password", lager.Data{"reason": err.Error()})
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}

		logger.Error("estimate-failed", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "estimate failed"})
		return
	}

	h.estimates.Inc(logger, estimate.Tier.String())

	response := EstimateResponse{
		Entropy:   estimate.Entropy,
		Unbounded: estimate.Unbounded(),
		Tier:      estimate.Tier,
	}
	if !response.Unbounded {
		seconds := float64(estimate.TimeToDecode)
		response.TimeToDecodeSeconds = &seconds
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
