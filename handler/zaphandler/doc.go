// Package zaphandler bridges fanlog to go.uber.org/zap.
//
// The message is interpolated from the context before it is handed to
// zap; context entries are attached as zap fields so that structured
// encoders keep them. Errors are attached with zap.NamedError and are not
// expanded into the message.
package zaphandler
