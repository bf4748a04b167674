package dood

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/lazycloud-app/go-doodsync/common/syncerr"
)

const (
	//StatusOK is the msg value of successful responses
	StatusOK = "OK"
	//MaxBodySize caps response bodies, listings are far below it
	MaxBodySize = 32 << 20
)

//ErrNotOK is wrapped by every API error
var ErrNotOK = errors.New("api responded with non-OK status")

var errNoResult = errors.New("result is missing")

type envelope struct {
	Msg    string          `json:"msg"`
	Status int             `json:"status"`
	Result json.RawMessage `json:"result"`
}

//result is a decoded result shape that can tell whether its list was actually present in the body
type result interface {
	checkPresent() error
}

//getResult requests endpoint with fld_id and unwraps the envelope. Errors are syncerr.E with op as context:
//Transport if request or body read failed, Decode if body is not the expected JSON or misses result data,
//API if msg is not OK or HTTP status is not 2xx.
func getResult[T result](ctx context.Context, c *Client, endpoint, fldID, op string) (T, error) {
	var zero T

	q := url.Values{}
	q.Set("key", c.key)
	q.Set("fld_id", fldID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return zero, syncerr.Transport(op, redact(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return zero, syncerr.Transport(op, redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return zero, syncerr.Transport(op, fmt.Errorf("reading body: %w", err))
	}
	if len(body) > MaxBodySize {
		return zero, syncerr.Transport(op, fmt.Errorf("body exceeds %d bytes, http status %d", MaxBodySize, resp.StatusCode))
	}

	httpOK := resp.StatusCode >= 200 && resp.StatusCode <= 299

	var env envelope
	if err = json.Unmarshal(body, &env); err != nil {
		if !httpOK {
			return zero, syncerr.Transport(op, fmt.Errorf("http status %d", resp.StatusCode))
		}
		return zero, syncerr.Decode(op, err)
	}

	if env.Msg != StatusOK || !httpOK {
		return zero, syncerr.API(op, fmt.Errorf("%w: msg %q, status %d, http status %d", ErrNotOK, env.Msg, env.Status, resp.StatusCode))
	}

	if len(env.Result) == 0 || string(env.Result) == "null" {
		return zero, syncerr.Decode(op, errNoResult)
	}
	var res T
	if err = json.Unmarshal(env.Result, &res); err != nil {
		return zero, syncerr.Decode(op, err)
	}
	if err = res.checkPresent(); err != nil {
		return zero, syncerr.Decode(op, err)
	}

	return res, nil
}

//redact strips *url.Error, which carries full request URL including api key
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s request failed: %w", uerr.Op, uerr.Err)
	}
	return err
}
