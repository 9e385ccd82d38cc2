package metrics

import "time"

type Stats struct {
	TotalBytes int64 // expected bytes per file

	ChunksPlanned   int64
	ChunksVerified  int64
	ChunkMismatches int64
	SizeMismatches  int64
	ShortReads      int64
	ReadErrors      int64

	BytesCompared int64 // bytes examined per file by the byte comparators
	BytesHashed   int64 // bytes fed to digest accumulators, both files combined

	Started  time.Time
	Finished time.Time
}

func (s *Stats) Start() { s.Started = time.Now() }
func (s *Stats) Stop()  { s.Finished = time.Now() }
func (s *Stats) Duration() time.Duration {
	if s.Finished.IsZero() {
		return time.Since(s.Started)
	}
	return s.Finished.Sub(s.Started)
}
