package report

import (
	"github.com/acarl005/stripansi"
	"github.com/sirupsen/logrus"

	"engine/source/text"
)

// Logs err at error level. Engine errors are rendered with hl and tagged with their kind; anything
// else is logged as it stands.
func Log(logger logrus.FieldLogger, hl text.Highlighter, err error) {
	if err == nil {
		return
	}
	if e, ok := As(err); ok {
		entry := logger.WithField("kind", e.Kind().String())
		if e.Error() != err.Error() {
			entry = entry.WithField("context", stripansi.Strip(err.Error()))
		}
		entry.Error(Render(e, hl))
		return
	}
	logger.WithError(err).Error("engine failed")
}
