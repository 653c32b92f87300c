// Package textsim 基于 TF-IDF 的短文本相似度（标题、作者这类字段）
package textsim

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// 过短或无区分度的词不参与计算
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "by": true, "for": true, "in": true,
	"of": true, "on": true, "the": true, "to": true, "with": true,
}

// Tokens 大小写折叠后按字母/数字切词
func Tokens(s string) []string {
	s = cases.Fold().String(s) // Caser 有状态，不跨 goroutine 共享
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if stopwords[f] || len([]rune(f)) < 2 {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Vector 稀疏词向量
type Vector map[string]float64

// Add 就地累加
func (v Vector) Add(o Vector) {
	for t, w := range o {
		v[t] += w
	}
}

func (v Vector) norm() float64 {
	var s float64
	for _, w := range v {
		s += w * w
	}
	return math.Sqrt(s)
}

// Corpus 文档频率表
type Corpus struct {
	n  int
	df map[string]int
}

func NewCorpus(docs [][]string) *Corpus {
	c := &Corpus{n: len(docs), df: map[string]int{}}
	for _, d := range docs {
		seen := map[string]bool{}
		for _, t := range d {
			if !seen[t] {
				seen[t] = true
				c.df[t]++
			}
		}
	}
	return c
}

// idf 平滑：ln((1+n)/(1+df)) + 1，未见过的词也有正权重
func (c *Corpus) idf(t string) float64 {
	return math.Log(float64(1+c.n)/float64(1+c.df[t])) + 1
}

// Vector 词频 × idf，L2 归一化
func (c *Corpus) Vector(tokens []string) Vector {
	v := Vector{}
	for _, t := range tokens {
		v[t]++
	}
	for t, tf := range v {
		v[t] = tf * c.idf(t)
	}
	if n := v.norm(); n > 0 {
		for t := range v {
			v[t] /= n
		}
	}
	return v
}

// Cosine 余弦相似度；任一为空向量时为 0
func Cosine(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for t, w := range a {
		dot += w * b[t]
	}
	na, nb := a.norm(), b.norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}
