package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/paymentbank/pb_backend/internal/apperrors"
	"github.com/paymentbank/pb_backend/internal/core/domain"
	portssvc "github.com/paymentbank/pb_backend/internal/core/ports/services"
	"github.com/paymentbank/pb_backend/internal/middleware"
)

// Client talks to the ledger service over HTTP. Every failure is classified
// into one of the apperrors.LedgerErrorKind values: transport errors, timeouts
// and 5xx responses are UNREACHABLE, 4xx responses are REJECTED, and bodies
// that cannot be decoded are MALFORMED.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	fetchRetries int
}

// NewClient creates a ledger client. fetchRetries bounds how many times an
// unreachable fetch is retried; submits are never retried.
func NewClient(baseURL string, timeout time.Duration, fetchRetries int) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		fetchRetries: fetchRetries,
	}
}

// FetchTransactions returns the transaction history for an account. An
// account with no history yields an empty slice, never nil and never an
// error. Only UNREACHABLE failures are retried, up to the configured count.
func (c *Client) FetchTransactions(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.fetchRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, &apperrors.LedgerError{Kind: apperrors.LedgerUnreachable, Op: "fetch", Err: err}
		}

		txns, err := c.fetchOnce(ctx, accountID)
		if err == nil {
			return txns, nil
		}
		lastErr = err

		var lerr *apperrors.LedgerError
		if !errors.As(err, &lerr) || !lerr.Retryable() {
			return nil, err
		}
		logger.Warn("Ledger fetch failed, retrying",
			slog.Int("account_id", accountID),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	url := fmt.Sprintf("%s/transaction/%d", c.baseURL, accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &apperrors.LedgerError{Kind: apperrors.LedgerUnreachable, Op: "fetch", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.LedgerError{Kind: apperrors.LedgerUnreachable, Op: "fetch", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return []domain.Transaction{}, nil
	case resp.StatusCode == http.StatusOK:
		var txns []domain.Transaction
		if err := json.NewDecoder(resp.Body).Decode(&txns); err != nil {
			return nil, &apperrors.LedgerError{Kind: apperrors.LedgerMalformed, Op: "fetch", Err: err}
		}
		if txns == nil {
			txns = []domain.Transaction{}
		}
		return txns, nil
	default:
		return nil, classifyStatus(resp, "fetch")
	}
}

// SubmitTransaction records a transaction in the ledger. It is side-effecting
// and is therefore never retried here: after an ambiguous failure the remote
// may already have stored the record.
func (c *Client) SubmitTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	body, err := json.Marshal(txn)
	if err != nil {
		return nil, &apperrors.LedgerError{Kind: apperrors.LedgerMalformed, Op: "submit", Err: err}
	}

	url := c.baseURL + "/transaction"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &apperrors.LedgerError{Kind: apperrors.LedgerUnreachable, Op: "submit", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.LedgerError{Kind: apperrors.LedgerUnreachable, Op: "submit", Err: err}
	}
	defer resp.Body.Close()

	logger.Info("Ledger submit response received",
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, classifyStatus(resp, "submit")
	}

	var stored domain.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, &apperrors.LedgerError{Kind: apperrors.LedgerMalformed, Op: "submit", Err: err}
	}
	return &stored, nil
}

func classifyStatus(resp *http.Response, op string) *apperrors.LedgerError {
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))

	kind := apperrors.LedgerUnreachable
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		kind = apperrors.LedgerRejected
	}
	return &apperrors.LedgerError{Kind: kind, Op: op, Err: err}
}

var _ portssvc.LedgerClient = (*Client)(nil)
