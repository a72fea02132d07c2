package usecase_test

import (
	"context"
	"sync"
	"time"

	"compliance-assistant/internal/assistant"
	"compliance-assistant/internal/assistant/repository"
	"compliance-assistant/internal/assistant/usecase"
	"compliance-assistant/internal/model"
	"compliance-assistant/internal/router"
	"compliance-assistant/internal/workspace"
	"compliance-assistant/pkg/log"
)

var testScope = model.Scope{UserID: "user-1", WorkspaceID: "ws-1", Role: "admin"}

// mockLogRepo is an in-memory durable log with error injection points.
type mockLogRepo struct {
	mu        sync.Mutex
	sessions  map[string]model.Session
	messages  []model.Message
	listCalls []repository.ListMessagesOptions

	createErr error
	getErr    error
	touchErr  error
	countErr  error
	appendErr func(msg model.Message) error
	listFunc  func(opt repository.ListMessagesOptions) ([]model.Message, error)
}

func newMockLogRepo() *mockLogRepo {
	return &mockLogRepo{sessions: make(map[string]model.Session)}
}

func (m *mockLogRepo) CreateSession(ctx context.Context, session model.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *mockLogRepo) GetSession(ctx context.Context, id string) (model.Session, error) {
	if m.getErr != nil {
		return model.Session{}, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return model.Session{}, repository.ErrSessionNotFound
	}
	return session, nil
}

func (m *mockLogRepo) TouchSession(ctx context.Context, id string, at time.Time) error {
	return m.touchErr
}

func (m *mockLogRepo) AppendMessage(ctx context.Context, opt repository.AppendMessageOptions) error {
	if m.appendErr != nil {
		if err := m.appendErr(opt.Message); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, opt.Message)
	return nil
}

func (m *mockLogRepo) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, opt)
	listFunc := m.listFunc
	m.mu.Unlock()
	if listFunc != nil {
		return listFunc(opt)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Message
	for _, msg := range m.messages {
		if msg.SessionID == opt.SessionID {
			out = append(out, msg)
		}
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[len(out)-opt.Limit:]
	}
	return out, nil
}

func (m *mockLogRepo) CountMessages(ctx context.Context, sessionID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.messages {
		if msg.SessionID == sessionID {
			n++
		}
	}
	return n, nil
}

func (m *mockLogRepo) stored() []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Message(nil), m.messages...)
}

// mockSemRepo is the semantic mirror. Its default ListMessages returns
// nothing, which pushes reads onto the durable fallback.
type mockSemRepo struct {
	mu          sync.Mutex
	messages    []model.Message
	feedback    []repository.FeedbackEvent
	appendErr   error
	feedbackErr error
	listFunc    func(opt repository.ListMessagesOptions) ([]model.Message, error)
}

func (m *mockSemRepo) AppendMessage(ctx context.Context, opt repository.AppendMessageOptions) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, opt.Message)
	return nil
}

func (m *mockSemRepo) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockSemRepo) AppendFeedback(ctx context.Context, event repository.FeedbackEvent) error {
	if m.feedbackErr != nil {
		return m.feedbackErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, event)
	return nil
}

func (m *mockSemRepo) stored() []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Message(nil), m.messages...)
}

type mockClassifier struct {
	detectFunc func(text string, hint *model.NLPHint) model.Intent
	validFunc  func(intent model.Intent) bool
	lastHint   *model.NLPHint
}

func (m *mockClassifier) Detect(ctx context.Context, text string, hint *model.NLPHint) model.Intent {
	m.lastHint = hint
	if m.detectFunc != nil {
		return m.detectFunc(text, hint)
	}
	return model.Intent{Name: model.IntentUnknown}
}

func (m *mockClassifier) ValidateParameters(intent model.Intent) bool {
	if m.validFunc != nil {
		return m.validFunc(intent)
	}
	return true
}

type mockRouter struct {
	classifyFunc func(message string, history []string) (router.RouterOutput, error)
}

func (m *mockRouter) Classify(ctx context.Context, message string, history []string) (router.RouterOutput, error) {
	if m.classifyFunc != nil {
		return m.classifyFunc(message, history)
	}
	return router.RouterOutput{Intent: string(model.IntentGeneralQuestion), Confidence: 50}, nil
}

type mockAggregator struct {
	snapshot  model.ContextSnapshot
	lastHints workspace.Hints
}

func (m *mockAggregator) Gather(ctx context.Context, sc model.Scope, hints workspace.Hints) model.ContextSnapshot {
	m.lastHints = hints
	return m.snapshot
}

type executorCall struct {
	action string
	params map[string]interface{}
}

type mockExecutor struct {
	result model.ActionResult
	calls  []executorCall
}

func (m *mockExecutor) Execute(ctx context.Context, sc model.Scope, action string, params map[string]interface{}, snapshot model.ContextSnapshot) model.ActionResult {
	m.calls = append(m.calls, executorCall{action: action, params: params})
	return m.result
}

type mockResponder struct {
	fromQueryFunc func(text string, history []model.Message, hint *model.NLPHint) string
	queryCalls    int
	actionCalls   int
	clarifyCalls  int
}

func (m *mockResponder) FromAction(result model.ActionResult, snapshot model.ContextSnapshot) string {
	m.actionCalls++
	if result.Success {
		return "action done"
	}
	return "action failed"
}

func (m *mockResponder) FromQuery(ctx context.Context, text string, snapshot model.ContextSnapshot, history []model.Message, hint *model.NLPHint) string {
	m.queryCalls++
	if m.fromQueryFunc != nil {
		return m.fromQueryFunc(text, history, hint)
	}
	return "answered"
}

func (m *mockResponder) Clarify(intent model.Intent) string {
	m.clarifyCalls++
	return "which one?"
}

type mockSuggester struct {
	suggestions []model.Suggestion
	lastReply   string
	lastIntent  model.Intent
}

func (m *mockSuggester) Generate(reply string, snapshot model.ContextSnapshot, intent model.Intent, hint *model.NLPHint) []model.Suggestion {
	m.lastReply = reply
	m.lastIntent = intent
	return m.suggestions
}

// fixture bundles one mock of every collaborator.
type fixture struct {
	logRepo    *mockLogRepo
	semRepo    *mockSemRepo
	classifier *mockClassifier
	router     *mockRouter
	aggregator *mockAggregator
	executor   *mockExecutor
	responder  *mockResponder
	suggester  *mockSuggester
}

func newFixture() *fixture {
	return &fixture{
		logRepo:    newMockLogRepo(),
		semRepo:    &mockSemRepo{},
		classifier: &mockClassifier{},
		router:     &mockRouter{},
		aggregator: &mockAggregator{},
		executor:   &mockExecutor{},
		responder:  &mockResponder{},
		suggester:  &mockSuggester{},
	}
}

func (f *fixture) useCase() assistant.UseCase {
	return usecase.New(log.NewNop(), f.logRepo, f.semRepo, f.classifier, f.router, f.aggregator, f.executor, f.responder, f.suggester)
}
