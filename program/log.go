package program

import "github.com/sirupsen/logrus"

var log = logrus.StandardLogger().WithField("type", "token/program")

// Log emits one log line through the program's logging shim.
func Log(msg string) {
	log.Info(msg)
}
