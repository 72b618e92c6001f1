package selflogic

import "sort"

type Transform struct {
}

// CalElements 计算天干或地支字形对应的五行
func (Transform) CalElements(glyphs []string) ([]Element, error) {
	var result []Element
	for _, v := range glyphs {
		if s, err := ParseStem(v); err == nil {
			result = append(result, s.Element())
			continue
		}
		b, err := ParseBranch(v)
		if err != nil {
			return nil, err
		}
		result = append(result, b.Element())
	}
	return result, nil
}

// CalProsDec 计算最旺的五行及其数量，数量相同时取先出现的
func (Transform) CalProsDec(elements []Element) (Element, int) {
	countMap := make(map[Element]int)
	var order []Element
	for _, element := range elements {
		mustElement(element)
		if countMap[element] == 0 {
			order = append(order, element)
		}
		countMap[element] = countMap[element] + 1
	}

	if len(order) == 0 {
		panic("selflogic: no elements to tally")
	}

	dominant := order[0]
	for _, e := range order[1:] {
		if countMap[e] > countMap[dominant] {
			dominant = e
		}
	}
	return dominant, countMap[dominant]
}

// OutputSeq 按地支顺序排序
func (Transform) OutputSeq(branches []Branch) []Branch {
	out := make([]Branch, len(branches))
	copy(out, branches)
	sort.SliceStable(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CalculateWuxingRelationship 计算两个五行元素之间的生克关系
// 第二个返回值: 0 比和, 1 第一个元素为主动方, 2 第二个元素为主动方
func (Transform) CalculateWuxingRelationship(element1, element2 Element) (Relation, int) {
	r := Relate(element1, element2)
	switch r {
	case Generates, Restrains:
		return r, 1
	case GeneratedBy, RestrainedBy:
		return r, 2
	}
	return r, 0
}

// UniqueCombination 从 n 个下标里按字典序取出 count 个的所有组合
func (t Transform) UniqueCombination(count, n int) [][]int {
	var helper func(int, []int, int)
	res := [][]int{}

	helper = func(start int, prev []int, left int) {
		if left == 0 {
			combo := make([]int, len(prev))
			copy(combo, prev)
			res = append(res, combo)
			return
		}

		for i := start; i <= n-left; i++ {
			// 递归地选择下一个元素
			helper(i+1, append(prev, i), left-1)
		}
	}

	helper(0, []int{}, count)
	return res
}
