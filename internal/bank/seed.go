package bank

import "fmt"

// defaultBank is built from seedItems by init().
var defaultBank *Bank

func init() {
	b, err := New(seedItems)
	if err != nil {
		panic(fmt.Sprintf("bank: invalid seed table: %v", err))
	}
	defaultBank = b
}

// Default returns the compiled-in grade 8 review bank.
func Default() *Bank {
	return defaultBank
}

var seedItems = []Item{
	// Phrases
	{ID: 1, Target: "look forward to", Source: "期待；盼望", Category: CategoryPhrase},
	{ID: 2, Target: "be interested in", Source: "对……感兴趣", Category: CategoryPhrase},
	{ID: 3, Target: "take care of", Source: "照顾；照看", Category: CategoryPhrase},
	{ID: 4, Target: "give up", Source: "放弃", Category: CategoryPhrase},
	{ID: 5, Target: "get along with", Source: "与……相处", Category: CategoryPhrase},
	{ID: 6, Target: "come up with", Source: "想出；提出", Category: CategoryPhrase},
	{ID: 7, Target: "make up one's mind", Source: "下定决心", Category: CategoryPhrase},
	{ID: 8, Target: "be good at", Source: "擅长", Category: CategoryPhrase},
	{ID: 9, Target: "at the same time", Source: "同时", Category: CategoryPhrase},
	{ID: 10, Target: "in front of", Source: "在……前面", Category: CategoryPhrase},
	{ID: 11, Target: "take part in", Source: "参加；参与", Category: CategoryPhrase},
	{ID: 12, Target: "be proud of", Source: "为……感到骄傲", Category: CategoryPhrase},
	{ID: 13, Target: "run out of", Source: "用完；耗尽", Category: CategoryPhrase},
	{ID: 14, Target: "pay attention to", Source: "注意", Category: CategoryPhrase},
	{ID: 15, Target: "turn down", Source: "调低；拒绝", Category: CategoryPhrase},
	{ID: 16, Target: "look after", Source: "照料", Category: CategoryPhrase},
	{ID: 17, Target: "be afraid of", Source: "害怕", Category: CategoryPhrase},
	{ID: 18, Target: "on time", Source: "准时", Category: CategoryPhrase},
	{ID: 19, Target: "all over the world", Source: "全世界", Category: CategoryPhrase},
	{ID: 20, Target: "try one's best", Source: "尽某人最大努力", Category: CategoryPhrase},
	{ID: 21, Target: "put off", Source: "推迟", Category: CategoryPhrase},
	{ID: 22, Target: "be full of", Source: "充满", Category: CategoryPhrase},
	{ID: 23, Target: "instead of", Source: "代替；而不是", Category: CategoryPhrase},
	{ID: 24, Target: "because of", Source: "因为；由于", Category: CategoryPhrase},
	{ID: 25, Target: "find out", Source: "查明；弄清", Category: CategoryPhrase},

	// Usages
	{ID: 26, Target: "spend time doing sth.", Source: "花时间做某事", Category: CategoryUsage},
	{ID: 27, Target: "It takes sb. time to do sth.", Source: "做某事花费某人多少时间", Category: CategoryUsage},
	{ID: 28, Target: "stop doing sth.", Source: "停止做某事", Category: CategoryUsage},
	{ID: 29, Target: "stop to do sth.", Source: "停下来去做某事", Category: CategoryUsage},
	{ID: 30, Target: "help sb. with sth.", Source: "帮助某人做某事（名词）", Category: CategoryUsage},
	{ID: 31, Target: "be used to doing sth.", Source: "习惯于做某事", Category: CategoryUsage},
	{ID: 32, Target: "used to do sth.", Source: "过去常常做某事", Category: CategoryUsage},
	{ID: 33, Target: "would rather do sth.", Source: "宁愿做某事", Category: CategoryUsage},
	{ID: 34, Target: "too ... to ...", Source: "太……而不能……", Category: CategoryUsage},
	{ID: 35, Target: "so ... that ...", Source: "如此……以至于……", Category: CategoryUsage},
	{ID: 36, Target: "not only ... but also ...", Source: "不仅……而且……", Category: CategoryUsage},
	{ID: 37, Target: "enjoy doing sth.", Source: "喜欢做某事", Category: CategoryUsage},
	{ID: 38, Target: "decide to do sth.", Source: "决定做某事", Category: CategoryUsage},
	{ID: 39, Target: "remember to do sth.", Source: "记得要做某事", Category: CategoryUsage},
	{ID: 40, Target: "remember doing sth.", Source: "记得做过某事", Category: CategoryUsage},
	{ID: 41, Target: "make sb. do sth.", Source: "使某人做某事", Category: CategoryUsage},
	{ID: 42, Target: "add ... to ...", Source: "把……加到……上", Category: CategoryUsage},
	{ID: 43, Target: "prefer A to B", Source: "比起B更喜欢A", Category: CategoryUsage},
	{ID: 44, Target: "the + 比较级, the + 比较级", Source: "越……就越……", Category: CategoryUsage},
	{ID: 45, Target: "It's + adj. + for sb. to do sth.", Source: "对某人来说做某事是……的", Category: CategoryUsage},
}
