package download

import (
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
)

// DefaultBaseURL is the release URL prefix; the platform and architecture
// tokens are appended to it. GitHub answers it with a redirect to the asset.
const DefaultBaseURL = "https://github.com/mamba-org/micromamba-releases/releases/latest/download/micromamba"

// ArtifactURL builds base + "-" + platform_token + "-" + arch_token.
func ArtifactURL(base string, target platform.Target) string {
	return base + "-" + target.Token()
}
