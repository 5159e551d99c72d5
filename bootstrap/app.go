package bootstrap

import (
	"github.com/redis/go-redis/v9"

	"github.com/soundpulse/soundpulse-backend/mongo"
)

// Application 进程级共享资源
type Application struct {
	Env   *Env
	Mongo mongo.Client
	Redis *redis.Client
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)
	app.Redis = NewRedisClient(app.Env)
	return *app
}

func (app *Application) CloseConnections() {
	CloseMongoDBConnection(app.Mongo)
	CloseRedisConnection(app.Redis)
}
