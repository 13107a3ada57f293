package notify

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/pomocli/pomo/internal/apperr"
)

var errInvalidSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format",
}

// prepSoundStream returns an audio stream for the specified sound file.
func prepSoundStream(sound string) (beep.StreamSeekCloser, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	f, err := os.Open(sound)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(sound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return nil, err
	}

	return stream, nil
}

// playSound plays the sound file asynchronously so the caller is never
// blocked on audio output.
func playSound(sound string) error {
	stream, err := prepSoundStream(sound)
	if err != nil {
		return err
	}

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		_ = stream.Close()
	})))

	return nil
}
