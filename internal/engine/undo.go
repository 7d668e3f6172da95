package engine

import "github.com/dshills/lscore/internal/engine/history"

// Checkpoint ends the current undo packet: the next mutation starts a new
// one. It also discards the redo history.
func (d *Document) Checkpoint() {
	d.history.Checkpoint()
}

// UndoOnce reverts the most recent packet.
func (d *Document) UndoOnce() error {
	_, err := d.Undo(1)
	return err
}

// RedoOnce reapplies the most recently undone packet.
func (d *Document) RedoOnce() error {
	_, err := d.Redo(1)
	return err
}

// Undo reverts up to n packets and returns how many were reverted. If the
// history runs out first the error wraps ErrNoMoreUndos and is a
// *HistoryError.
func (d *Document) Undo(n int) (int, error) {
	return d.step("undo", n, d.history.UndoOnce)
}

// Redo reapplies up to n undone packets and returns how many were
// reapplied. If the history runs out first the error wraps ErrNoMoreRedos
// and is a *HistoryError.
func (d *Document) Redo(n int) (int, error) {
	return d.step("redo", n, d.history.RedoOnce)
}

func (d *Document) step(op string, n int, once func(history.Target) (*history.Packet, error)) (int, error) {
	done := 0
	defer d.updateParse()

	for done < n {
		packet, err := once(d.target())
		if err != nil {
			return done, &HistoryError{Op: op, Requested: n, Completed: done, Err: err}
		}
		d.log.Debugf("%s %s: %s", op, d.id, packet)
		done++
	}
	return done, nil
}

// ForgetEverything discards the undo and redo history.
func (d *Document) ForgetEverything() {
	d.history.ForgetEverything()
}

// ForgetRedos discards the redo history.
func (d *Document) ForgetRedos() {
	d.history.ForgetRedos()
}
