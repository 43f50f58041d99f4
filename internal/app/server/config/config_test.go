package config

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateApp_KeepsCurrentOnEmpty(t *testing.T) {
	cfg := &Config{}
	cfg.UpdateApp(App{Name: "atelier", Theme: "dark"})

	cfg.UpdateApp(App{Theme: "light"})

	app := cfg.App()
	assert.Equal(t, "atelier", app.Name)
	assert.Equal(t, "light", app.Theme)
}

// Settings are updated over HTTP while other handlers read them, so
// App and UpdateApp must be safe to call from parallel goroutines.
func TestUpdateApp_ConcurrentReaders(t *testing.T) {
	cfg := &Config{}
	cfg.UpdateApp(App{Name: "atelier", Theme: "dark"})

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				cfg.UpdateApp(App{Name: fmt.Sprintf("name-%d-%d", g, i)})
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				app := cfg.App()
				assert.NotEmpty(t, app.Name)
				assert.Equal(t, "dark", app.Theme)
			}
		}()
	}
	wg.Wait()
}
