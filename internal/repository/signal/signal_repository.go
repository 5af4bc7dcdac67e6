package signal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"predictBot/business/prediction"
	"predictBot/domain"
	"predictBot/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

type SignalConfig struct {
	URL               string
	Token             string
	BasicAuthUsername string
	BasicAuthPassword string

	TypeID    int
	Language  int
	Random    string
	Signature string

	// per attempt
	Timeout     time.Duration
	MaxRetries  int
	BackoffBase time.Duration

	RateLimit float64 // requests per second, 0 disables
	RateBurst int

	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

type SignalRepository struct {
	cfg     SignalConfig
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	now     func() time.Time
}

func NewSignalRepository(cfg SignalConfig) *SignalRepository {
	return NewSignalRepositoryWithClient(cfg, &http.Client{})
}

func NewSignalRepositoryWithClient(cfg SignalConfig, client *http.Client) *SignalRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 500 * time.Millisecond
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 60 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	failures := cfg.BreakerFailures
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "signal_api",
		Interval: 60 * time.Second,
		Timeout:  cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// the caller giving up says nothing about the upstream
		IsSuccessful: func(err error) bool {
			var ca *callerAbort
			return err == nil || errors.As(err, &ca)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("signal_breaker_state_change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &SignalRepository{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
		breaker: breaker,
		now:     time.Now,
	}
}

// FetchSnapshot posts one request to the draw statistics API, retrying
// transport failures and 5xx/429 responses up to MaxRetries times.
func (r *SignalRepository) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := r.cfg.BackoffBase << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, &prediction.FetchError{Kind: prediction.FetchKindTransport, Err: ctx.Err()}
			case <-time.After(backoff):
			}
		}

		snap, err := r.fetchOnce(ctx)
		if err == nil {
			SignalFetchAttemptsTotal.WithLabelValues("ok").Inc()
			return snap, nil
		}

		lastErr = err
		SignalFetchAttemptsTotal.WithLabelValues("error").Inc()
		logger.Warn("signal_fetch_attempt_failed", "attempt", attempt+1, "error", err)

		if !retryable(err) {
			break
		}
	}

	return nil, lastErr
}

func (r *SignalRepository) fetchOnce(ctx context.Context) (domain.Snapshot, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, &prediction.FetchError{Kind: prediction.FetchKindTransport, Err: fmt.Errorf("rate limit wait failed: %w", err)}
		}
	}

	res, err := r.breaker.Execute(func() (interface{}, error) {
		snap, err := r.doRequest(ctx)
		if err != nil && ctx.Err() != nil {
			return nil, &callerAbort{err: err}
		}
		return snap, err
	})
	if err != nil {
		var ca *callerAbort
		if errors.As(err, &ca) {
			return nil, ca.err
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &prediction.FetchError{Kind: prediction.FetchKindCircuit, Err: err}
		}
		return nil, err
	}

	return res.(domain.Snapshot), nil
}

// callerAbort marks a failure caused by the caller's own context ending.
type callerAbort struct {
	err error
}

func (e *callerAbort) Error() string {
	return e.err.Error()
}

func (e *callerAbort) Unwrap() error {
	return e.err
}

type signalRequest struct {
	TypeID    int    `json:"typeId"`
	Language  int    `json:"language"`
	Random    string `json:"random"`
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
}

func (r *SignalRepository) doRequest(ctx context.Context) (domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(signalRequest{
		TypeID:    r.cfg.TypeID,
		Language:  r.cfg.Language,
		Random:    r.cfg.Random,
		Signature: r.cfg.Signature,
		Timestamp: r.now().Unix(),
	})
	if err != nil {
		return nil, &prediction.FetchError{Kind: prediction.FetchKindTransport, Err: fmt.Errorf("failed to marshal json payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, &prediction.FetchError{Kind: prediction.FetchKindTransport, Err: err}
	}
	req.Header.Add("Content-Type", "application/json;charset=UTF-8")
	req.Header.Add("Accept", "application/json, text/plain, */*")
	switch {
	case r.cfg.BasicAuthUsername != "":
		basic := goshortcute.StringtoBase64Encode(r.cfg.BasicAuthUsername + ":" + r.cfg.BasicAuthPassword)
		req.Header.Add("Authorization", "Basic "+basic)
	case r.cfg.Token != "":
		req.Header.Add("Authorization", "Bearer "+r.cfg.Token)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, &prediction.FetchError{Kind: prediction.FetchKindTransport, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &prediction.FetchError{Kind: prediction.FetchKindTransport, Err: fmt.Errorf("read body: %w", err)}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &prediction.FetchError{
			Kind:       prediction.FetchKindHTTP,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("signal api returned %s", res.Status),
		}
	}

	snap, err := ParseSnapshot(body)
	if err != nil {
		return nil, &prediction.FetchError{Kind: prediction.FetchKindDecode, Err: err}
	}

	return snap, nil
}

func retryable(err error) bool {
	var fe *prediction.FetchError
	if !errors.As(err, &fe) {
		return false
	}
	switch fe.Kind {
	case prediction.FetchKindTransport:
		return !errors.Is(fe.Err, context.Canceled)
	case prediction.FetchKindHTTP:
		return fe.StatusCode >= 500 || fe.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}
