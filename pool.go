package objfmt

import "sync"

const maxScratchCap = 64 * 1024

var serializerPool = sync.Pool{
	New: func() any {
		return &serializer{}
	},
}

func acquireSerializer(opts *Options) *serializer {
	s := serializerPool.Get().(*serializer)
	s.configure(opts)
	return s
}

func releaseSerializer(s *serializer) {
	if s == nil {
		return
	}
	if cap(s.buf) > maxScratchCap {
		s.buf = nil
	} else {
		s.buf = s.buf[:0]
	}
	s.kinds = s.kinds[:0]
	clear(s.path)
	s.noPlainFor = nil
	s.st = Styles{}
	serializerPool.Put(s)
}
