package engine

import (
	"log"
	"runtime"
	"time"

	"aimax/internal/aimax"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000
	// 被将死
	mateScore = 100000

	defaultBaseDepth  = 5
	defaultYieldEvery = 3
)

// 搜索配置
type SearchConfig struct {
	BaseDepth  int                  // 子多时的基础深度，默认 5
	MaxDepth   int                  // 动态深度上限（0 表示不限制）
	FixedDepth int                  // >0 时跳过动态深度
	YieldEvery int                  // 根节点每走几步让出一次，默认 3
	Yield      func()               // 让出点，默认 runtime.Gosched
	Values     *ValueTable          // 子力表，nil 用固定表
	Verbose    bool                 // 打印思考过程
	Logf       func(string, ...any) // Verbose 时的输出，默认 log.Printf
}

// 搜索结果
type SearchResult struct {
	BestMove   aimax.Move    // 最佳着法
	Found      bool          // 没有合法着法时为 false
	Checkmated bool          // Found=false 且被将军
	Score      int           // 评估分（正：红方好，负：黑方好）
	Depth      int           // 搜索深度
	Nodes      int64         // 节点数
	TimeUsed   time.Duration // 花费时间
}

// Engine 一局棋用一个；不能并发使用
type Engine struct {
	cfg    SearchConfig
	eval   *Evaluator
	tables heuristicTables
	nodes  int64
}

func NewEngine(cfg SearchConfig) *Engine {
	if cfg.BaseDepth <= 0 {
		cfg.BaseDepth = defaultBaseDepth
	}
	if cfg.YieldEvery <= 0 {
		cfg.YieldEvery = defaultYieldEvery
	}
	if cfg.Yield == nil {
		cfg.Yield = runtime.Gosched
	}
	if cfg.Logf == nil {
		cfg.Logf = log.Printf
	}
	e := &Engine{
		cfg:  cfg,
		eval: NewEvaluator(cfg.Values),
	}
	e.tables.reset()
	return e
}

// Reset 换局时清空杀手表和历史表
func (e *Engine) Reset() {
	e.tables.reset()
	e.nodes = 0
}

func (e *Engine) logf(format string, args ...any) {
	if !e.cfg.Verbose {
		return
	}
	e.cfg.Logf(format, args...)
}
