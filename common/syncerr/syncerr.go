package syncerr

import (
	"errors"
	"fmt"
)

//E is the error type shared by fetcher, store and sync routine.
//Kind tells the sync routine how the error should be treated, Op keeps human-readable context
//(endpoint, folder id, file code) so log lines can be understood without a stack trace.
type E struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *E) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("[%s] %s -> %v", e.Kind, e.Op, e.Err)
}

func (e *E) Unwrap() error {
	return e.Err
}

//Is makes errors.Is(err, &E{Kind: k}) match any E of the same kind
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

//Kind represents possible error kinds
type Kind int

const (
	KindUnknown Kind = iota

	KindTransport //Request could not be sent or response could not be read
	KindDecode    //Response body is not valid JSON or does not match expected shape
	KindAPI       //Well-formed response with non-OK status
	KindStorage   //Schema init or write failure
	KindConfig

	KindIllegal
)

func (k Kind) String() string {
	kindNames := [...]string{"Unknown", "Transport", "Decode", "API", "Storage", "Config", "Illegal"}
	if KindUnknown > k || k > KindIllegal {
		return "Unknown"
	}
	return kindNames[k]
}

//New returns E of kind k
func New(k Kind, op string, err error) *E {
	return &E{Kind: k, Op: op, Err: err}
}

func Transport(op string, err error) *E { return New(KindTransport, op, err) }
func Decode(op string, err error) *E    { return New(KindDecode, op, err) }
func API(op string, err error) *E       { return New(KindAPI, op, err) }
func Storage(op string, err error) *E   { return New(KindStorage, op, err) }
func Config(op string, err error) *E    { return New(KindConfig, op, err) }

//KindOf returns Kind of the first E found in err chain or KindUnknown
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

//IsKind reports whether err chain contains E of kind k
func IsKind(err error, k Kind) bool {
	return errors.Is(err, &E{Kind: k})
}
