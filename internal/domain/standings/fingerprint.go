package standings

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"

	"github.com/riskibarqy/cricket-league/internal/domain/match"
)

// Fingerprint is a structural hash of everything Compute reads, usable as a memo key.
func Fingerprint(in Input) string {
	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = h.Write(buf[:])
	}
	writeStr := func(v string) {
		writeInt(len(v))
		_, _ = h.Write([]byte(v))
	}

	writeStr(string(in.Format))
	writeInt(in.OversLimit)
	writeInt(in.Points.Win)
	writeInt(in.Points.Draw)
	writeInt(in.Points.Loss)

	writeInt(len(in.Teams))
	for _, t := range in.Teams {
		writeStr(t.ID)
		writeStr(t.Name)
	}

	writeInt(len(in.Matches))
	for _, m := range in.Matches {
		writeStr(m.ID)
		writeInt(m.Round)
		writeStr(m.Team1ID)
		writeStr(m.Team2ID)
		writeStr(string(m.Status))
		if m.Result == nil {
			writeInt(-1)
			continue
		}
		r := m.Result
		writeStr(string(r.Type))
		writeStr(r.WinnerTeamID)
		for _, side := range [...]match.Innings{r.Team1, r.Team2} {
			writeInt(side.Runs)
			writeInt(side.Wickets)
			writeInt(side.Overs)
			writeInt(side.Balls)
		}
	}

	return strconv.FormatUint(h.Sum64(), 16)
}
