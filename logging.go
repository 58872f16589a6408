package rtree

import "github.com/sirupsen/logrus"

// debugf emits a Debug-level structured log entry if the tree was
// configured with WithLogger. It is a no-op otherwise.
func (t *Tree[T]) debugf(fields logrus.Fields, msg string) {
	if t.logger == nil {
		return
	}
	t.logger.WithFields(fields).Debug(msg)
}
