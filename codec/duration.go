package codec

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/internal/nodes"
)

// Duration returns a codec between an integer count of unit and
// time.Duration, so Duration(time.Millisecond) reads `250` as 250ms. Go
// duration strings such as "1.5s" are accepted on decode too. Encoding always
// writes the integer count, truncated towards zero.
func Duration(unit time.Duration) ys.Codec[time.Duration] {
	if unit <= 0 {
		unit = time.Nanosecond
	}
	return durationCodec{unit: unit}
}

type durationCodec struct{ unit time.Duration }

func (c durationCodec) Decode(ctx context.Context, n *yaml.Node) (time.Duration, error) {
	if nodes.KindOf(n) != nodes.KindScalar {
		return 0, ys.ShapeMismatch(nodes.Resolve(n), nodes.KindScalar)
	}
	s := nodes.Resolve(n)
	if s.ShortTag() == "!!int" {
		var count int64
		if err := s.Decode(&count); err != nil {
			return 0, ys.ScalarParse(s, "duration", err)
		}
		d := time.Duration(count) * c.unit
		if count != 0 && d/c.unit != time.Duration(count) {
			return 0, ys.ScalarParse(s, "duration", fmt.Errorf("%d%s overflows time.Duration", count, c.unit))
		}
		return d, nil
	}
	d, err := time.ParseDuration(s.Value)
	if err != nil {
		return 0, ys.ScalarParse(s, "duration", err)
	}
	return d, nil
}

func (c durationCodec) Encode(ctx context.Context, d time.Duration) (*yaml.Node, error) {
	return nodes.Scalar("!!int", fmt.Sprint(int64(d/c.unit))), nil
}
