package report

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/replmeta/internal/audit"
)

// NamespaceFindingIdentity is the UUID v5 namespace of finding IDs.
var NamespaceFindingIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("replmeta/finding-identity/v1"))

// FindingID derives a deterministic ID from the file, repository path and
// message of a finding. Re-running an audit on an unchanged package yields
// the same IDs, so findings can be tracked across runs.
func FindingID(f audit.Finding) uuid.UUID {
	key := strings.Join([]string{f.File, f.Diagnostic.Path, f.Diagnostic.Message}, "\x00")
	return uuid.NewSHA1(NamespaceFindingIdentity, []byte(key))
}
