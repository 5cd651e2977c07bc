// Package corenode is a client for the Stacks node RPC endpoints used by the
// indexer.
package corenode

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 4 << 20
)

// ErrNotFound is returned when the node does not know the requested item.
var ErrNotFound = errors.New("not found")

// Client talks to a Stacks node RPC server.
type Client struct {
	baseURL string
	http    *http.Client
	limiter ratelimit.Limiter
	metrics Metrics
}

// New builds a client for baseURL allowing at most rps requests per second.
func New(baseURL string, rps int, metrics Metrics) *Client {
	if rps <= 0 {
		rps = 20
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		limiter: ratelimit.New(rps),
		metrics: metrics,
	}
}

type attachmentResponse struct {
	Attachment struct {
		Content attachmentContent `json:"content"`
	} `json:"attachment"`
}

// attachmentContent accepts both a hex string and a JSON byte array.
type attachmentContent []byte

func (c *attachmentContent) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		decoded, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return fmt.Errorf("decode attachment hex: %w", err)
		}
		*c = decoded
		return nil
	}

	var ints []int
	if err := json.Unmarshal(b, &ints); err != nil {
		return fmt.Errorf("decode attachment content: %w", err)
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("attachment byte %d out of range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*c = out
	return nil
}

// Attachment fetches the content stored under an attachment (zonefile) hash.
func (c *Client) Attachment(ctx context.Context, hash string) (content []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveRPC("get_attachment", err, started)
	}()

	var resp attachmentResponse
	if err = c.getJSON(ctx, "/v2/attachments/"+strings.TrimPrefix(hash, "0x"), &resp); err != nil {
		return nil, fmt.Errorf("get attachment %s: %w", hash, err)
	}
	return resp.Attachment.Content, nil
}

// Info is the subset of /v2/info the indexer reads.
type Info struct {
	PeerVersion     uint32 `json:"peer_version"`
	BurnBlockHeight uint64 `json:"burn_block_height"`
	StacksTipHeight uint64 `json:"stacks_tip_height"`
	StacksTip       string `json:"stacks_tip"`
	NetworkID       uint32 `json:"network_id"`
}

// Info returns the node status.
func (c *Client) Info(ctx context.Context) (info Info, err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveRPC("get_info", err, started)
	}()

	if err = c.getJSON(ctx, "/v2/info", &info); err != nil {
		return Info{}, fmt.Errorf("get info: %w", err)
	}
	return info, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
