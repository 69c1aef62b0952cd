package mulconfigs

import (
	"os"

	"github.com/reusee/mulscan/cmds"
	"github.com/reusee/mulscan/configs"
	"github.com/reusee/mulscan/vars"
)

// Session is sent as the session cookie when fetching http(s) inputs.
type Session string

var sessionFlag = cmds.Var[string]("-session")

func (Module) Session(
	loader configs.Loader,
) Session {
	return Session(vars.FirstNonZero(
		*sessionFlag,
		configs.First[string](loader, "session"),
		os.Getenv("MULSCAN_SESSION"),
	))
}
