package signing

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "signing")
