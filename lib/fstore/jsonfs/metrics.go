package jsonfs

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/SujalChoudhari/Node-User-Settings/lib/fstore"
)

// storeMetrics tracks load/save activity per logical preference file.
// Counter lookups by formatted name are not free, so the per-file counter
// sets are cached in a concurrent map keyed by logical file name.
type storeMetrics struct {
	files        *xsync.MapOf[string, *fileCounters]
	filesCreated *metrics.Counter
	dirsCreated  *metrics.Counter
}

type fileCounters struct {
	loads      [4]*metrics.Counter // indexed by fstore.LoadOrigin
	saves      *metrics.Counter
	saveErrors *metrics.Counter
}

func newStoreMetrics() *storeMetrics {
	return &storeMetrics{
		files:        xsync.NewMapOf[string, *fileCounters](),
		filesCreated: metrics.GetOrCreateCounter(`usersettings_files_created_total`),
		dirsCreated:  metrics.GetOrCreateCounter(`usersettings_dirs_created_total`),
	}
}

func (m *storeMetrics) forFile(name string) *fileCounters {
	counters, _ := m.files.LoadOrCompute(name, func() *fileCounters {
		c := &fileCounters{
			saves:      metrics.GetOrCreateCounter(fmt.Sprintf(`usersettings_saves_total{file=%q}`, name)),
			saveErrors: metrics.GetOrCreateCounter(fmt.Sprintf(`usersettings_save_errors_total{file=%q}`, name)),
		}
		for origin := fstore.OriginFile; origin <= fstore.OriginParseError; origin++ {
			c.loads[origin] = metrics.GetOrCreateCounter(
				fmt.Sprintf(`usersettings_loads_total{file=%q,origin=%q}`, name, origin.String()))
		}
		return c
	})
	return counters
}

func (m *storeMetrics) countLoad(name string, origin fstore.LoadOrigin) {
	if origin >= fstore.OriginFile && origin <= fstore.OriginParseError {
		m.forFile(name).loads[origin].Inc()
	}
}

func (m *storeMetrics) countSave(name string)      { m.forFile(name).saves.Inc() }
func (m *storeMetrics) countSaveError(name string) { m.forFile(name).saveErrors.Inc() }
func (m *storeMetrics) countFileCreated()          { m.filesCreated.Inc() }
func (m *storeMetrics) countDirCreated()           { m.dirsCreated.Inc() }
