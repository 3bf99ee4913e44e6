package resolve

import "testing"

func TestCache(t *testing.T) {
	cache := NewCache()

	prod := &Result{Consumer: "myapp", Profile: "PROD"}
	uat := &Result{Consumer: "myapp", Profile: "UAT"}

	cache.Put(prod)
	cache.Put(uat)

	t.Run("hit", func(t *testing.T) {
		got, ok := cache.Get("myapp", "PROD")
		if !ok || got != prod {
			t.Errorf("Get(myapp, PROD) = %v, %v", got, ok)
		}
	})

	t.Run("profile is part of the key", func(t *testing.T) {
		got, ok := cache.Get("myapp", "UAT")
		if !ok || got != uat {
			t.Errorf("Get(myapp, UAT) = %v, %v", got, ok)
		}
	})

	t.Run("miss", func(t *testing.T) {
		if _, ok := cache.Get("other", "PROD"); ok {
			t.Error("unexpected hit for unknown consumer")
		}
	})

	t.Run("invalidate", func(t *testing.T) {
		cache.Invalidate("myapp", "PROD")

		if _, ok := cache.Get("myapp", "PROD"); ok {
			t.Error("entry survived invalidation")
		}

		if _, ok := cache.Get("myapp", "UAT"); !ok {
			t.Error("invalidation removed an unrelated entry")
		}
	})

	t.Run("purge", func(t *testing.T) {
		cache.Put(prod)
		cache.Purge()

		if _, ok := cache.Get("myapp", "UAT"); ok {
			t.Error("entry survived purge")
		}
	})
}

func TestCacheKeySeparation(t *testing.T) {
	if cacheKey("ab", "c") == cacheKey("a", "bc") {
		t.Error("adjacent pairs must hash to distinct keys")
	}
}
