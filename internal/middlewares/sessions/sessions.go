package sessions

import (
	"encoding/gob"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	injectSessionKey = "session"
	sessionDataKey   = "data"
)

type SessionData struct {
	id        string    // session id
	IP        string    // client ip address
	UserID    uint      // voting user id
	LastSeen  time.Time // last request time
	LoginTime time.Time // last login time
}

func (s SessionData) ID() string {
	return s.id
}

func (s *SessionData) IsLoggedIn() bool {
	return s.UserID != 0
}

func init() {
	gob.Register(SessionData{})
}

func getSession(ctx *fiber.Ctx) *session.Session {
	return ctx.Locals(injectSessionKey).(*session.Session)
}

func Get(ctx *fiber.Ctx) SessionData {
	sess := getSession(ctx)
	data, _ := sess.Get(sessionDataKey).(SessionData)
	data.id = sess.ID()
	return data
}

func Set(ctx *fiber.Ctx, data SessionData) {
	getSession(ctx).Set(sessionDataKey, data)
}

// Value returns a raw value stored in the session under key.
func Value(ctx *fiber.Ctx, key string) interface{} {
	return getSession(ctx).Get(key)
}

// SetValue stores a raw value in the session under key.
func SetValue(ctx *fiber.Ctx, key string, val interface{}) {
	getSession(ctx).Set(key, val)
}

func Destroy(ctx *fiber.Ctx) error {
	return getSession(ctx).Destroy()
}

// Reset regenerates the session id and replaces the stored data.
func Reset(ctx *fiber.Ctx, data *SessionData) error {
	sess := getSession(ctx)
	if err := sess.Reset(); err != nil {
		return err
	}
	data.id = sess.ID()
	sess.Set(sessionDataKey, *data)
	return nil
}

func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sess, err := store.Get(ctx)
		if err != nil {
			return err
		}

		ctx.Locals(injectSessionKey, sess)
		if err := ctx.Next(); err != nil {
			return err
		}

		if data, ok := sess.Get(sessionDataKey).(SessionData); ok {
			data.LastSeen = time.Now()
			sess.Set(sessionDataKey, data)
		}
		if len(sess.Keys()) > 0 {
			return sess.Save()
		}
		return nil
	}
}
