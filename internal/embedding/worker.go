// ABOUTME: Isolated embedding worker reachable only through message passing
// ABOUTME: One goroutine owns the model client; requests and replies are channel messages
package embedding

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// messageKind tags a worker reply. Progress messages are advisory and never
// complete a pending call.
type messageKind int

const (
	resultMessage messageKind = iota
	errorMessage
	progressMessage
)

// message is one reply from the worker to a caller.
type message struct {
	kind   messageKind
	vector []float64
	errMsg string
	info   string
}

// embedRequest asks the worker to embed text. The reply channel must be
// buffered; the worker never blocks on a caller that has gone away.
type embedRequest struct {
	text  string
	reply chan message
}

// worker owns the embedding model client and serves requests one at a time.
// It imposes no deadline of its own; the client's timer is the only bounded
// wait, and late replies land in the caller's buffered channel.
type worker struct {
	client   *openai.Client
	model    openai.EmbeddingModel
	requests chan embedRequest
	done     chan struct{}
}

func newWorker(apiKey, baseURL, model string) (*worker, error) {
	if apiKey == "" {
		return nil, &InitError{Reason: "no API key configured for the embedding model"}
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	w := &worker{
		client:   openai.NewClientWithConfig(clientConfig),
		model:    openai.EmbeddingModel(model),
		requests: make(chan embedRequest),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *worker) run() {
	first := true
	for {
		select {
		case <-w.done:
			return
		case req := <-w.requests:
			if first {
				w.send(req.reply, message{kind: progressMessage, info: "embedding model ready: " + string(w.model)})
				first = false
			}
			w.send(req.reply, w.embed(req.text))
		}
	}
}

// embed performs one model call and packages the outcome as a message.
func (w *worker) embed(text string) message {
	resp, err := w.client.CreateEmbeddings(context.Background(), openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: w.model,
	})
	if err != nil {
		return message{kind: errorMessage, errMsg: err.Error()}
	}
	if len(resp.Data) == 0 {
		return message{kind: errorMessage, errMsg: "no embedding returned"}
	}

	raw := resp.Data[0].Embedding
	vector := make([]float64, len(raw))
	for i, v := range raw {
		vector[i] = float64(v)
	}
	return message{kind: resultMessage, vector: vector}
}

// send delivers a message without blocking. Callers that timed out have
// stopped reading; their buffered reply channel absorbs the message.
func (w *worker) send(reply chan message, msg message) {
	select {
	case reply <- msg:
	default:
	}
}

func (w *worker) stop() {
	close(w.done)
}
