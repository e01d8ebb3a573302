package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sasku-server/internal/util"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("SASKU_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("SASKU_STORE_REDIS_PASSWORD", "hunter2")()
	defer util.SetEnv("SASKU_GAME_POKK_BONUS", "4")()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format)
	a.Equal(DriverRedis, cfg.Store.Driver)
	a.Equal("redis:6379", cfg.Store.Redis.Addr)
	a.Equal(2, cfg.Store.Redis.DB)
	a.Equal("hunter2", cfg.Store.Redis.Password)
	a.True(cfg.Game.PictureExchange)
	a.Equal(4, cfg.Game.PokkBonus)
	a.Equal(16, cfg.Game.GameEndThreshold)
	a.Equal("random", cfg.Bots.Level)
	a.Equal(250*time.Millisecond, cfg.Bots.Delay())

	// ensure that it's only loaded once
	_ = os.Setenv("SASKU_GAME_POKK_BONUS", "6")
	// ensure we aren't using a pointer
	cfg.Game.PokkBonus = 99
	cfg = Instance()
	a.Equal(4, cfg.Game.PokkBonus)
}

func TestLoad_Defaults(t *testing.T) {
	defer util.SetEnv("SASKU_CONFIG_FILE", "")()

	assert.NoError(t, Load())
	assert.Equal(t, DefaultConfig().Store, Instance().Store)
	assert.Equal(t, 750, Instance().Bots.DelayMS)
	assert.Equal(t, 750*time.Millisecond, Instance().Bots.Delay())
}

func TestBots_Delay(t *testing.T) {
	assert.Equal(t, time.Duration(0), Bots{}.Delay())
	assert.Equal(t, time.Duration(0), Bots{DelayMS: -5}.Delay())
	assert.Equal(t, 2*time.Second, Bots{DelayMS: 2000}.Delay())
}

func TestLoad_MissingFile(t *testing.T) {
	defer util.SetEnv("SASKU_CONFIG_FILE", "testdata/missing.yaml")()
	assert.Error(t, Load())
}
