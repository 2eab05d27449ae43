package intervals

import (
	"testing"

	"github.com/vipcxj/intervalset/cmd"
	"github.com/vipcxj/intervalset/cmdtest"
)

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("intervalset", cmd.Execute)
	ts.Run(t, false)
}
