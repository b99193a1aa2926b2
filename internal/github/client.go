package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/douhashi/autocomment/internal/logger"
	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

// Client はGitHub APIクライアントのラッパー
type Client struct {
	github *github.Client
}

type clientOptions struct {
	baseURL   string
	userAgent string
	logger    logger.Logger
	transport http.RoundTripper
}

// ClientOption はClientの生成オプション
type ClientOption func(*clientOptions)

// WithBaseURL はAPIのベースURLを差し替える（GitHub Enterpriseやテストサーバー向け）
func WithBaseURL(baseURL string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithUserAgent はUser-Agentヘッダーを設定する
func WithUserAgent(ua string) ClientOption {
	return func(o *clientOptions) {
		o.userAgent = ua
	}
}

// WithLogger はHTTPリクエスト/レスポンスをデバッグログに出力するロガーを設定する
func WithLogger(l logger.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithTransport は認証レイヤーの下で使うトランスポートを設定する
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(o *clientOptions) {
		o.transport = rt
	}
}

// NewClient は新しいGitHub APIクライアントを作成する
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, errors.New("GitHub token is required")
	}

	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	base := o.transport
	if base == nil {
		base = http.DefaultTransport
	}
	if o.logger != nil {
		base = &loggingRoundTripper{base: base, logger: o.logger}
	}

	// ロギングはoauth2の下に置き、Authorizationヘッダー付与後のリクエストを記録する
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   base,
		},
	}

	gh := github.NewClient(httpClient)

	if o.baseURL != "" {
		u, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, err
		}
		gh.BaseURL = u
	}
	if o.userAgent != "" {
		gh.UserAgent = o.userAgent
	}

	return &Client{github: gh}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// GetRepository はリポジトリ情報を取得する
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	if err := validateRepo(owner, repo); err != nil {
		return nil, err
	}

	repository, _, err := c.github.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, ClassifyError(err)
	}

	return repository, nil
}

// GetIssue は番号を指定してIssueを取得する
func (c *Client) GetIssue(ctx context.Context, owner, repo string, number int) (*Issue, error) {
	if err := validateRepo(owner, repo); err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, errors.New("issue number must be positive")
	}

	issue, _, err := c.github.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, ClassifyError(err)
	}

	return issue, nil
}

// CreateIssueComment はIssueにコメントを投稿する。本文は加工せずそのまま送信する。
func (c *Client) CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (*IssueComment, error) {
	if err := validateRepo(owner, repo); err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, errors.New("issue number must be positive")
	}
	if body == "" {
		return nil, errors.New("comment is required")
	}

	comment, _, err := c.github.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, ClassifyError(err)
	}

	return comment, nil
}

func validateRepo(owner, repo string) error {
	if owner == "" {
		return errors.New("owner is required")
	}
	if repo == "" {
		return errors.New("repo is required")
	}
	return nil
}
