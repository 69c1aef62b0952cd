package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/mulscan/logs"
	"github.com/reusee/mulscan/mulconfigs"
	"github.com/reusee/mulscan/nets"
)

// Open returns the byte source named by name: "-" for stdin, an http(s) URL, or a file path.
type Open func(ctx context.Context, name string) (io.ReadCloser, error)

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) Open(
	stdin Stdin,
	client nets.HTTPClient,
	session mulconfigs.Session,
	logger logs.Logger,
) Open {
	return func(ctx context.Context, name string) (io.ReadCloser, error) {
		switch {

		case name == "-":
			return io.NopCloser(stdin), nil

		case strings.HasPrefix(name, "http://"),
			strings.HasPrefix(name, "https://"):
			logger.InfoContext(ctx, "fetch input", "url", name)
			return fetch(ctx, client, name, session)

		}

		return os.Open(name)
	}
}

func fetch(ctx context.Context, client *http.Client, url string, session mulconfigs.Session) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if session != "" {
		req.AddCookie(&http.Cookie{
			Name:  "session",
			Value: string(session),
		})
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}
