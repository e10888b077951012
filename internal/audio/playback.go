package audio

// playback pairs loadfile commands with mpv's start-file and end-file
// events. Loading a clip over another one ends the old file after the new
// load was issued, so an end-file event only releases the waiter once every
// load has started.
type playback struct {
	loads   int
	started int
	done    chan struct{}
}

// begin releases the previous waiter and registers a new load.
func (pb *playback) begin() <-chan struct{} {
	pb.release()
	pb.done = make(chan struct{})
	pb.loads++
	return pb.done
}

// abort undoes begin for a load mpv rejected.
func (pb *playback) abort() {
	pb.loads--
	pb.release()
}

func (pb *playback) start() { pb.started++ }

func (pb *playback) end() {
	if pb.started == pb.loads {
		pb.release()
	}
}

func (pb *playback) release() {
	if pb.done != nil {
		close(pb.done)
		pb.done = nil
	}
}
