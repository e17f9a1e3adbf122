package naming

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A cases.Caser may keep state between calls and must not be shared across
// goroutines, so each conversion borrows one from the pool.
var upperCaserPool = sync.Pool{
	New: func() any {
		c := cases.Upper(language.Und)
		return &c
	},
}

func getUpperCaser() *cases.Caser {
	c := upperCaserPool.Get().(*cases.Caser)
	c.Reset()
	return c
}

func putUpperCaser(c *cases.Caser) {
	if c == nil {
		return
	}
	upperCaserPool.Put(c)
}
