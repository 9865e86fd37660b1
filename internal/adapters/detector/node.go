package detector

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/zephyr-ci/zephyr/internal/core/domain"
)

// SettingsNodeID is the unique identifier for the resolved settings Graft node.
const SettingsNodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Settings, error) {
			settings := domain.ResolveSettings(os.LookupEnv)
			// Recognize CI vendors beyond the generic CI flag.
			settings.CI = settings.CI || DetectCI(os.LookupEnv)
			return settings, nil
		},
	})
}
