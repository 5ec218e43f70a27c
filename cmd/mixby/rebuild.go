package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"
)

type rebuildOptions struct {
	server  string
	force   bool
	timeout time.Duration
	retries int
}

func newRebuildIndexCommand() *cobra.Command {
	opts := rebuildOptions{}
	cmd := &cobra.Command{
		Use:   "rebuild-index",
		Short: "Ask a running server to rebuild the vector index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			rebuilt, count, err := requestRebuild(ctx, opts)
			if err != nil {
				return err
			}
			if rebuilt {
				fmt.Fprintf(cmd.OutOrStdout(), "vector index rebuilt with %d records\n", count)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "vector index already holds %d records\n", count)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.server, "server", "http://localhost:8080", "base URL of the mixby server")
	cmd.Flags().BoolVar(&opts.force, "force", false, "rebuild even when the index is populated")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Minute, "overall request timeout")
	cmd.Flags().IntVar(&opts.retries, "retries", 3, "retries on connection errors")
	return cmd
}

func requestRebuild(ctx context.Context, opts rebuildOptions) (bool, int, error) {
	endpoint, err := url.JoinPath(opts.server, "/api/v1/admin/vector-index/rebuild")
	if err != nil {
		return false, 0, fmt.Errorf("invalid server url: %w", err)
	}
	if opts.force {
		endpoint += "?force=" + strconv.FormatBool(opts.force)
	}

	client := retryablehttp.NewClient()
	client.RetryMax = opts.retries
	client.Logger = nil
	client.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return false, 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, 0, fmt.Errorf("rebuild request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			return false, 0, fmt.Errorf("rebuild failed (%s): %s", errResp.Error.Code, errResp.Error.Message)
		}
		return false, 0, fmt.Errorf("rebuild failed with status %d", resp.StatusCode)
	}

	var result struct {
		Rebuilt bool `json:"rebuilt"`
		Count   int  `json:"count"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return false, 0, fmt.Errorf("invalid rebuild response: %w", err)
	}
	return result.Rebuilt, result.Count, nil
}
