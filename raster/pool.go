package raster

import "sync"

// Pool is a thread-safe pool for reusing scratch images.
//
// Pool groups images by their dimensions and depth. The seedfill engines
// take one scratch image per call to snapshot the buffer between sweeps,
// and independent calls may run on different goroutines.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Image
	maxSize int // max images per bucket
}

// poolKey identifies a bucket of images with the same size and depth.
type poolKey struct {
	width  int
	height int
	depth  Depth
}

// NewPool creates a new image pool with the given maximum images per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Image),
		maxSize: maxPerBucket,
	}
}

// Get retrieves an image from the pool or creates a new one.
// Returned images are zeroed. Returns nil for invalid parameters.
func (p *Pool) Get(width, height int, depth Depth) *Image {
	key := poolKey{width: width, height: height, depth: depth}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		img := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		img.Clear()
		return img
	}
	p.mu.Unlock()

	img, err := New(width, height, depth)
	if err != nil {
		return nil
	}
	return img
}

// Put returns an image to the pool for reuse.
// If img is nil or the bucket is at capacity, the image is discarded.
func (p *Pool) Put(img *Image) {
	if img == nil {
		return
	}

	key := poolKey{width: img.width, height: img.height, depth: img.depth}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, img)
}

// defaultPool backs GetScratch and PutScratch.
var defaultPool = NewPool(4)

// GetScratch retrieves a zeroed image from the default pool.
func GetScratch(width, height int, depth Depth) *Image {
	return defaultPool.Get(width, height, depth)
}

// PutScratch returns an image to the default pool.
func PutScratch(img *Image) {
	defaultPool.Put(img)
}
