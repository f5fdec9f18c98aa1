package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
)

// Pool both encoders and their underlying buffers so hot paths avoid
// per-response allocations.
type pooledEncoder struct {
	buf     *bytes.Buffer
	encoder *json.Encoder
}

func (pe *pooledEncoder) reset() {
	pe.buf.Reset()
}

var encoderPool = sync.Pool{
	New: func() interface{} {
		buf := bytes.NewBuffer(make([]byte, 0, 512))
		return &pooledEncoder{
			buf:     buf,
			encoder: json.NewEncoder(buf),
		}
	},
}

// WriteJSON encodes data and writes it with the given status code. Encoding
// happens before any header is committed, so an encoding failure can still
// be turned into a different response by the caller.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	pe := encoderPool.Get().(*pooledEncoder)
	defer func() {
		pe.reset()
		encoderPool.Put(pe)
	}()

	if err := pe.encoder.Encode(data); err != nil {
		return err
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(statusCode)

	_, err := w.Write(pe.buf.Bytes())
	return err
}
