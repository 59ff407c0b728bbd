package formatter

import (
	"strings"

	"github.com/philipp01105/fanlog/core"
)

// Interpolate substitutes context values into {key} placeholders.
//
// Keys are visited in lexicographic order. For each key only the first
// occurrence of its placeholder is replaced, in the message as it stands
// after the previous keys were substituted. Substituted text is never
// re-scanned for its own key, and placeholders without a context entry
// are left verbatim.
func Interpolate(message string, ctx core.Context) string {
	if len(ctx) == 0 || strings.IndexByte(message, '{') < 0 {
		return message
	}

	for _, key := range ctx.Keys() {
		placeholder := "{" + key + "}"
		if !strings.Contains(message, placeholder) {
			continue
		}
		message = strings.Replace(message, placeholder, core.StringValue(ctx[key]), 1)
	}
	return message
}

// Render interpolates the message and, when the context carries an error
// under core.ErrorKey, prefixes it with the error name and appends the
// error's trace frames on the following lines:
//
//	<name>: <message>
//	<frame>
//	...
func Render(message string, ctx core.Context) string {
	message = Interpolate(message, ctx)

	err := ctx.Err()
	if err == nil {
		return message
	}

	var b strings.Builder
	b.WriteString(core.ErrorName(err))
	b.WriteString(": ")
	b.WriteString(message)
	b.WriteByte('\n')
	b.WriteString(core.ErrorFrames(err))
	return b.String()
}
