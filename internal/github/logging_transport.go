package github

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/douhashi/autocomment/internal/logger"
)

const bodyPreviewLimit = 200

// loggingRoundTripper はHTTPリクエスト/レスポンスをデバッグログに出力する
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger logger.Logger
}

// RoundTrip はリクエストを実行し、前後でログを出力する
func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	rt.logRequest(req)

	resp, err := rt.base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		rt.logger.Debug("github_api_error",
			"method", req.Method,
			"url", req.URL.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}

	rt.logResponse(req, resp, duration)

	return resp, nil
}

func (rt *loggingRoundTripper) logRequest(req *http.Request) {
	fields := []interface{}{
		"method", req.Method,
		"url", req.URL.String(),
	}

	if auth := req.Header.Get("Authorization"); auth != "" {
		fields = append(fields, "scheme", maskAuthHeader(auth))
	}
	if ua := req.Header.Get("User-Agent"); ua != "" {
		fields = append(fields, "user_agent", ua)
	}

	rt.logger.Debug("github_api_request", fields...)
}

func (rt *loggingRoundTripper) logResponse(req *http.Request, resp *http.Response, duration time.Duration) {
	fields := []interface{}{
		"method", req.Method,
		"status_code", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	}

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		fields = append(fields, "rate_limit_remaining", remaining)
	}
	if requestID := resp.Header.Get("X-GitHub-Request-Id"); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}

	if resp.Body != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			rt.logger.Error("failed_to_read_response_body", "error", err.Error())
			resp.Body = io.NopCloser(bytes.NewReader(nil))
		} else {
			// ボディを呼び出し側のために戻す
			resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

			fields = append(fields, "body_preview", previewBody(bodyBytes))
		}
	}

	rt.logger.Debug("github_api_response", fields...)
}

// previewBody はボディを先頭bodyPreviewLimitバイトまでに切り詰める。
// マルチバイト文字の途中では切らない。
func previewBody(body []byte) string {
	if len(body) <= bodyPreviewLimit {
		return string(body)
	}
	cut := bodyPreviewLimit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut]) + "..."
}

// maskAuthHeader はAuthorizationヘッダーのスキームだけを残す
func maskAuthHeader(auth string) string {
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 {
		return fmt.Sprintf("%s [REDACTED]", parts[0])
	}
	return "[REDACTED]"
}
