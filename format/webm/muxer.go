package webm

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vidkit/webm/codec/vp8parser"
	"github.com/vidkit/webm/format/webm/webmio"
	"github.com/vidkit/webm/format/webp"
)

// MIME is the media type of a finished document.
const MIME = "video/webm"

const (
	// TimecodeScale is the tick length in nanoseconds: one millisecond.
	TimecodeScale = 1000000
	// ClusterMaxDuration is the accumulated duration in ms at which a
	// cluster is closed and the next frame starts a new one.
	ClusterMaxDuration = 30000
	// MaxFrameDuration bounds a single frame's duration so every
	// cluster-relative timecode fits a signed 16-bit value.
	MaxFrameDuration = 32767

	videoTrackNumber = 1
	appName          = "vidkit/webm"
)

var ErrNoFrames = errors.New("webm: no frames")

// ErrNoImage is returned when a supplied buffer holds no recognizable
// single-image payload.
var ErrNoImage = errors.New("webm: no image payload in container")

// Frame is one keyframe to be muxed. Bitstream starts at the VP8 frame tag,
// Duration is the display time in milliseconds.
type Frame struct {
	Bitstream []byte
	Width     int
	Height    int
	Duration  int
}

type cluster struct {
	timecode int // ms from the start of the document
	frames   []Frame
}

// FromWebP extracts the keyframe bitstream and dimensions from a
// WebP-encoded image and wraps them as a Frame with the given duration.
func FromWebP(image []byte, duration int) (Frame, error) {
	doc, err := webp.Parse(image)
	if err != nil {
		return Frame{}, err
	}
	chunk := doc.Find(webp.FourCCWEBP)
	if chunk == nil {
		return Frame{}, ErrNoImage
	}
	info, err := vp8parser.ParseKeyframe(chunk.Data)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Bitstream: info.Bitstream,
		Width:     info.Width,
		Height:    info.Height,
		Duration:  duration,
	}, nil
}

// MuxWebP muxes a sequence of WebP keyframe images with per-image display
// durations in milliseconds.
func MuxWebP(images [][]byte, durations []int) ([]byte, error) {
	if len(images) != len(durations) {
		return nil, fmt.Errorf("webm: %d images but %d durations", len(images), len(durations))
	}
	frames := make([]Frame, 0, len(images))
	for i, image := range images {
		frame, err := FromWebP(image, durations[i])
		if err != nil {
			return nil, fmt.Errorf("webm: frame %d: %w", i, err)
		}
		frames = append(frames, frame)
	}
	return Mux(frames)
}

// MuxWebPFPS muxes a sequence of WebP keyframe images at a uniform frame
// rate, every frame lasting 1000/fps milliseconds.
func MuxWebPFPS(images [][]byte, fps float64) ([]byte, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("webm: invalid fps %v", fps)
	}
	durations := make([]int, len(images))
	for i := range durations {
		durations[i] = int(1000 / fps)
	}
	return MuxWebP(images, durations)
}

// Mux assembles a complete WebM document from already-extracted keyframes.
// The whole document is materialized in memory; the returned buffer is
// independently playable.
func Mux(frames []Frame) ([]byte, error) {
	if err := validate(frames); err != nil {
		return nil, err
	}

	clusters := partition(frames)

	info := infoElement(totalDuration(frames))
	tracks := tracksElement(frames[0].Width, frames[0].Height)
	cues, positions := cuesSkeleton(clusters)

	segmentChildren := make([]*webmio.Element, 0, 3+len(clusters))
	segmentChildren = append(segmentChildren, info, tracks, cues)
	for _, c := range clusters {
		el, err := clusterElement(c)
		if err != nil {
			return nil, err
		}
		segmentChildren = append(segmentChildren, el)
	}

	// Two-pass layout. The cues skeleton keeps its serialized length
	// stable (8 byte fixed-width positions), so offsets accumulated here
	// already account for it. Every child except the cues is frozen to
	// its rendered bytes; the cues render again below once all position
	// slots are filled.
	pos := 0
	for i, el := range segmentChildren {
		if i >= 3 {
			positions[i-3].Value = uint64(pos)
		}
		b := el.Marshal()
		pos += len(b)
		if el != cues {
			segmentChildren[i] = webmio.Raw(b)
		}
	}

	segment := webmio.Master(webmio.ElementSegment, segmentChildren...)
	return webmio.MarshalElements([]*webmio.Element{headerElement(), segment}), nil
}

func validate(frames []Frame) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	w, h := frames[0].Width, frames[0].Height
	for i, f := range frames {
		if f.Width != w || f.Height != h {
			return fmt.Errorf("webm: frame %d: dimensions %dx%d differ from %dx%d",
				i, f.Width, f.Height, w, h)
		}
		if f.Duration < 0 || f.Duration > MaxFrameDuration {
			return fmt.Errorf("webm: frame %d: duration %dms out of range [0, %d]",
				i, f.Duration, MaxFrameDuration)
		}
	}
	return nil
}

// partition walks the frames in order, closing a cluster once its
// accumulated duration reaches ClusterMaxDuration. A cluster always holds
// at least one frame; frames are never split.
func partition(frames []Frame) []cluster {
	var out []cluster

	elapsed := 0
	cur := cluster{timecode: 0}
	dur := 0
	for _, f := range frames {
		cur.frames = append(cur.frames, f)
		dur += f.Duration
		elapsed += f.Duration
		if dur >= ClusterMaxDuration {
			out = append(out, cur)
			cur = cluster{timecode: elapsed}
			dur = 0
		}
	}
	if len(cur.frames) > 0 {
		out = append(out, cur)
	}
	return out
}

func totalDuration(frames []Frame) int {
	total := 0
	for _, f := range frames {
		total += f.Duration
	}
	return total
}

func headerElement() *webmio.Element {
	return webmio.Master(webmio.ElementEBML,
		webmio.Uint(webmio.ElementEBMLVersion, 1),
		webmio.Uint(webmio.ElementEBMLReadVersion, 1),
		webmio.Uint(webmio.ElementEBMLMaxIDLength, 4),
		webmio.Uint(webmio.ElementEBMLMaxSizeLength, 8),
		webmio.String(webmio.ElementDocType, "webm"),
		webmio.Uint(webmio.ElementDocTypeVersion, 2),
		webmio.Uint(webmio.ElementDocTypeReadVersion, 2),
	)
}

func infoElement(duration int) *webmio.Element {
	uid := uuid.New()
	return webmio.Master(webmio.ElementInfo,
		webmio.Binary(webmio.ElementSegmentUID, uid[:]),
		webmio.Uint(webmio.ElementTimecodeScale, TimecodeScale),
		webmio.Float(webmio.ElementDuration, float64(duration)),
		webmio.String(webmio.ElementMuxingApp, appName),
		webmio.String(webmio.ElementWritingApp, appName),
	)
}

func tracksElement(width, height int) *webmio.Element {
	return webmio.Master(webmio.ElementTracks,
		webmio.Master(webmio.ElementTrackEntry,
			webmio.Uint(webmio.ElementTrackNumber, videoTrackNumber),
			webmio.Uint(webmio.ElementTrackUID, videoTrackNumber),
			webmio.Uint(webmio.ElementTrackType, 1),
			webmio.Uint(webmio.ElementFlagLacing, 0),
			webmio.String(webmio.ElementLanguage, "und"),
			webmio.String(webmio.ElementCodecID, "V_VP8"),
			webmio.String(webmio.ElementCodecName, "VP8"),
			webmio.Master(webmio.ElementVideo,
				webmio.Uint(webmio.ElementPixelWidth, uint64(width)),
				webmio.Uint(webmio.ElementPixelHeight, uint64(height)),
			),
		),
	)
}

// cuesSkeleton builds one CuePoint per cluster with a zero position
// placeholder. The returned position elements share memory with the cues
// tree; the layout pass writes resolved byte offsets into them.
func cuesSkeleton(clusters []cluster) (*webmio.Element, []*webmio.Element) {
	points := make([]*webmio.Element, 0, len(clusters))
	positions := make([]*webmio.Element, 0, len(clusters))
	for _, c := range clusters {
		position := webmio.FixedUint(webmio.ElementCueClusterPosition, 0, 8)
		positions = append(positions, position)
		points = append(points, webmio.Master(webmio.ElementCuePoint,
			webmio.Uint(webmio.ElementCueTime, uint64(c.timecode)),
			webmio.Master(webmio.ElementCueTrackPositions,
				webmio.Uint(webmio.ElementCueTrack, videoTrackNumber),
				position,
			),
		))
	}
	return webmio.Master(webmio.ElementCues, points...), positions
}

func clusterElement(c cluster) (*webmio.Element, error) {
	children := make([]*webmio.Element, 0, 1+len(c.frames))
	children = append(children, webmio.Uint(webmio.ElementTimecode, uint64(c.timecode)))

	rel := 0
	for _, f := range c.frames {
		block, err := PackSimpleBlock(videoTrackNumber, int16(rel), BlockFlags{Keyframe: true}, f.Bitstream)
		if err != nil {
			return nil, err
		}
		children = append(children, webmio.Binary(webmio.ElementSimpleBlock, block))
		rel += f.Duration
	}
	return webmio.Master(webmio.ElementCluster, children...), nil
}
