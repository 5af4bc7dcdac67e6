package signal

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"predictBot/domain"
)

const (
	typeFrequency = "Frequency"
	typeMissing   = "Missing"

	// counters above this are not plausible draw statistics
	maxStatValue = 1 << 20
)

type signalResponse struct {
	Code *int              `json:"code"`
	Msg  string            `json:"msg"`
	Data []json.RawMessage `json:"data"`
}

// signalItem is one row of the data array, e.g.
// {"typeName":"Missing","number_0":4,"number_1":0,...}
type signalItem map[string]json.RawMessage

func (it signalItem) typeName() string {
	raw, ok := it["typeName"]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func (it signalItem) number(v int) (int, error) {
	key := "number_" + strconv.Itoa(v)
	raw, ok := it[key]
	if !ok || string(raw) == "null" {
		return 0, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, fmt.Errorf("%s: unexpected value %s", key, string(raw))
		}
		text = n.String()
	}
	text = strings.TrimSpace(text)

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// accept integral floats such as 3.0 or 1e3
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > maxStatValue {
			return 0, fmt.Errorf("%s: %q is not an integer in range", key, text)
		}
		n = int64(f)
	}
	if n < 0 || n > maxStatValue {
		return 0, fmt.Errorf("%s: %d out of range 0..%d", key, n, maxStatValue)
	}

	return int(n), nil
}

// ParseSnapshot reads the first Frequency and Missing rows. Absent rows or keys
// count as zero; a body without a data array is an error.
func ParseSnapshot(body []byte) (domain.Snapshot, error) {
	var resp signalResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signal response: %w", err)
	}
	if resp.Data == nil {
		if resp.Msg != "" {
			return nil, fmt.Errorf("signal response has no data: %s", resp.Msg)
		}
		return nil, errors.New("signal response has no data")
	}

	var frequency, missing signalItem
	for _, raw := range resp.Data {
		var it signalItem
		if err := json.Unmarshal(raw, &it); err != nil {
			continue
		}
		switch it.typeName() {
		case typeFrequency:
			if frequency == nil {
				frequency = it
			}
		case typeMissing:
			if missing == nil {
				missing = it
			}
		}
	}

	snap := make(domain.Snapshot, domain.NumCandidates)
	for v := domain.MinCandidate; v <= domain.MaxCandidate; v++ {
		var st domain.SignalStat
		var err error
		if frequency != nil {
			if st.Frequency, err = frequency.number(v); err != nil {
				return nil, err
			}
		}
		if missing != nil {
			if st.Missing, err = missing.number(v); err != nil {
				return nil, err
			}
		}
		snap[v] = st
	}

	return snap, nil
}
