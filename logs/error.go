package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span of ctx onto err, so a failure printed by a
// command can be matched with its log records.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
