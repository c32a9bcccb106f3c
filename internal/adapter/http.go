package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/MKhiriev/go-content-sync/internal/config"
	"github.com/MKhiriev/go-content-sync/internal/logger"
	"github.com/MKhiriev/go-content-sync/internal/utils"
	"github.com/MKhiriev/go-content-sync/models"
)

const (
	headerRequestID = "X-Request-ID"
	headerSignature = "X-Signature"

	defaultAttemptTimeout = 10 * time.Second
)

// notifyPayload is the body of an http notify call.
type notifyPayload struct {
	Target string    `json:"target"`
	URLs   []string  `json:"urls"`
	SentAt time.Time `json:"sent_at"`
}

type httpNotifier struct {
	client *utils.HTTPClient
	ids    *utils.TraceIDs

	attemptTimeout time.Duration
	maxTries       uint
	signed         bool
	newBackOff     func() backoff.BackOff

	logger *logger.Logger
}

// NewHTTPNotifier constructs the http notify hook. Every call is retried up
// to cfg.RetryCount times with exponential backoff; each attempt is bounded
// by cfg.RequestTimeout. With cfg.SignKey set, the body is signed with
// HMAC-SHA256 into the X-Signature header.
func NewHTTPNotifier(cfg config.Adapter, logger *logger.Logger) Notifier {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}

	client := utils.NewHTTPClient(timeout)
	client.SetHeader("Content-Type", "application/json")

	if cfg.SignKey != "" {
		utils.InitHasherPool(cfg.SignKey)
	}

	return &httpNotifier{
		client:         client,
		ids:            utils.NewTraceIDs(),
		attemptTimeout: timeout,
		maxTries:       max(cfg.RetryCount, 1),
		signed:         cfg.SignKey != "",
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 10 * time.Second
			return b
		},
		logger: logger,
	}
}

func (n *httpNotifier) Notify(ctx context.Context, target models.Target, urls []string) error {
	log := logger.FromContext(ctx)

	if target.NotifyURL == "" {
		return fmt.Errorf("%w: %s", ErrMissingNotifyURL, target.Name)
	}

	body, err := json.Marshal(notifyPayload{Target: target.Name, URLs: urls, SentAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encoding notify payload: %w", err)
	}

	// one request id for all attempts lets the receiver drop duplicates
	requestID := n.ids.New()
	attempt := 0
	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		err := n.post(ctx, target.NotifyURL, requestID, body)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "*httpNotifier.Notify").
				Str("target", target.Name).
				Int("attempt", attempt).
				Msg("notify attempt failed")
		}
		return struct{}{}, err
	}, backoff.WithBackOff(n.newBackOff()), backoff.WithMaxTries(n.maxTries))
	if err != nil {
		log.Err(err).Str("func", "*httpNotifier.Notify").Str("target", target.Name).Msg("target could not be notified")
		return fmt.Errorf("notify %s: %w", target.Name, err)
	}

	log.Debug().Str("func", "*httpNotifier.Notify").Str("target", target.Name).Str("request_id", requestID).Msg("target notified")
	return nil
}

func (n *httpNotifier) post(ctx context.Context, url, requestID string, body []byte) error {
	attemptCtx, cancel := context.WithTimeout(ctx, n.attemptTimeout)
	defer cancel()

	req := n.client.R().
		SetContext(attemptCtx).
		SetHeader(headerRequestID, requestID).
		SetBody(body)
	if n.signed {
		req.SetHeader(headerSignature, hex.EncodeToString(utils.Hash(body)))
	}

	resp, err := req.Post(url)
	if err != nil {
		return fmt.Errorf("notify request: %w", err)
	}
	if retry, err := checkResponse(resp); err != nil {
		if !retry {
			return backoff.Permanent(err)
		}
		return err
	}
	return nil
}
