package registration

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "registration")
