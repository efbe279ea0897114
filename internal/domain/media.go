package domain

import "errors"

var ErrUnknownMediaKind = errors.New("unknown media kind")

type MediaKind string

const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
	// MediaSpeaking is a transient voice-activity flag. It is relayed to the
	// room but never stored on the participant.
	MediaSpeaking MediaKind = "speaking"
)

func ParseMediaKind(raw string) (MediaKind, error) {
	switch k := MediaKind(raw); k {
	case MediaAudio, MediaVideo, MediaSpeaking:
		return k, nil
	}
	return "", ErrUnknownMediaKind
}

// Stored reports whether the kind is part of Participant state.
func (k MediaKind) Stored() bool {
	return k == MediaAudio || k == MediaVideo
}
