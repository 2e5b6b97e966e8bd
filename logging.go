package String_View

import (
	"os"

	"github.com/sirupsen/logrus"
)

// init routes logrus output to stdout so precondition failures are
// captured alongside normal output.
func init() {
	logrus.SetOutput(os.Stdout)
}
