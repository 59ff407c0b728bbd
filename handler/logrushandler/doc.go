// Package logrushandler bridges fanlog to github.com/sirupsen/logrus.
//
// Context entries become logrus fields. A context entry named
// "severity" is overwritten by the original fanlog level.
package logrushandler
