package renderer

import (
	"runtime"
	"sync"
)

// ScanlineTask asks a worker to render one row of the image
type ScanlineTask struct {
	Row int
}

// ScanlineResult contains the pixels of a rendered row
type ScanlineResult struct {
	Row    int
	Pixels []Color
	Error  error
}

// WorkerPool renders scanlines in parallel
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	numWorkers  int
	render      func(row int) ([]Color, error)
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool for an image with the given number of
// rows. numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(rows, numWorkers int, render func(row int) ([]Color, error)) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = max(1, min(numWorkers, rows))

	return &WorkerPool{
		taskQueue:   make(chan ScanlineTask, rows),   // Buffer for every row
		resultQueue: make(chan ScanlineResult, rows), // Buffer for every result
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop waits for the workers to drain the queue and shuts them down
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a scanline for rendering
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		pixels, err := wp.render(task.Row)
		wp.resultQueue <- ScanlineResult{
			Row:    task.Row,
			Pixels: pixels,
			Error:  err,
		}
	}
}
