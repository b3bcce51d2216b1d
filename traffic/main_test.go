package traffic

import (
	"os"
	"testing"

	"github.com/golangdaddy/highwayrush/internal/monitoring"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}
