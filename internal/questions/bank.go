package questions

import (
	"slices"

	"github.com/ArushKhare/LockedInterview/internal/models"
)

// PoolName identifies one of the static question pools.
type PoolName string

const (
	PoolBehavioralGeneric  PoolName = "behavioral_generic"
	PoolTechSweFaangIntern PoolName = "tech_swe_faang_intern"
	PoolTechSweGeneric     PoolName = "tech_swe_generic"
	PoolTechDsGeneric      PoolName = "tech_ds_generic"
	PoolTechPmGeneric      PoolName = "tech_pm_generic"
)

// Pool is a fixed, named list of questions. The backing slice is never
// handed out, so a Pool can be shared freely between requests.
type Pool struct {
	name      PoolName
	questions []models.Question
}

func (p Pool) Name() PoolName { return p.name }

func (p Pool) Len() int { return len(p.questions) }

// Questions returns a copy of the pool contents in definition order.
func (p Pool) Questions() []models.Question {
	out := make([]models.Question, len(p.questions))
	for i, q := range p.questions {
		out[i] = models.Question{Text: q.Text, Tags: slices.Clone(q.Tags)}
	}
	return out
}

func newPool(name PoolName, qs ...models.Question) Pool {
	return Pool{name: name, questions: qs}
}

func q(text string, tags ...string) models.Question {
	return models.Question{Text: text, Tags: tags}
}

// Behavioral, used for every role.
var behavioralGeneric = newPool(PoolBehavioralGeneric,
	q("Tell me about a time you disagreed with a teammate and how you resolved it.", "Behavioral", "Conflict"),
	q("Describe a project you’re most proud of. What was your role and what was the outcome?", "Behavioral", "Ownership"),
	q("Tell me about a time you had to learn something quickly to succeed.", "Behavioral", "Learning"),
	q("Walk me through a time when you made a mistake at work or school. What did you do afterwards?", "Behavioral", "Failure"),
	q("Give an example of working under a tight deadline. How did you manage priorities?", "Behavioral", "Pressure"),
	q("Tell me about a time you had to influence someone without direct authority.", "Behavioral", "Influence"),
	q("Describe a time you received tough feedback. How did you respond?", "Behavioral", "Feedback"),
	q("Tell me about a situation where you had to deal with ambiguity.", "Behavioral", "Ambiguity"),
)

// Technical SWE, FAANG style, intern/junior flavor.
var techSweFaangIntern = newPool(PoolTechSweFaangIntern,
	q("Given an array of integers and a target value, return indices of any two numbers whose sum equals the target.", "Technical", "Arrays"),
	q("Given a string, determine if it contains all unique characters. Try solving it with and without extra data structures.", "Technical", "Strings"),
	q("Given a singly linked list, reverse the list in place and return the new head.", "Technical", "Linked List"),
	q("Given an array of integers, move all zeros to the end while keeping the relative order of non-zero elements.", "Technical", "Arrays", "Two Pointers"),
	q("Implement a function that checks whether two strings are anagrams of each other.", "Technical", "Strings", "Hash Map"),
	q("Given a sorted array of integers and a target, return the index of the target or the position where it should be inserted.", "Technical", "Binary Search"),
	q("Design a data structure that supports push, pop, top, and retrieving the minimum element in constant time.", "Technical", "Stack", "Design"),
	q("Given the root of a binary tree, return its level-order traversal (values by level).", "Technical", "Trees", "BFS"),
	q("Given an array of stock prices, compute the maximum profit from a single buy and a single sell.", "Technical", "Arrays"),
	q("You are given a staircase with n steps and you can climb 1 or 2 steps at a time. How many distinct ways can you climb to the top?", "Technical", "Dynamic Programming"),
)

// Technical SWE, non-FAANG. Also the fallback for unknown roles.
var techSweGeneric = newPool(PoolTechSweGeneric,
	q("Implement a basic LRU (least recently used) cache with get and put operations.", "Technical", "Design", "Hash Map"),
	q("Given an unsorted array, return the length of the longest consecutive elements sequence.", "Technical", "Arrays"),
	q("Given a matrix, return its elements in spiral order starting from the top-left corner.", "Technical", "Matrix"),
	q("Given an array of meeting time intervals, determine if a single person could attend all meetings.", "Technical", "Intervals"),
	q("Given a string containing parentheses, determine if the sequence is valid (properly opened and closed).", "Technical", "Stack"),
)

var techDsGeneric = newPool(PoolTechDsGeneric,
	q("Explain how you would detect outliers in a univariate dataset. What techniques can you use?", "Technical", "Statistics"),
	q("Describe the bias-variance tradeoff. How does it influence your choice of model complexity?", "Technical", "ML Theory"),
	q("You have imbalanced classes in a classification problem. What approaches can you use to handle this?", "Technical", "ML Practice"),
)

// Light system design and product sense.
var techPmGeneric = newPool(PoolTechPmGeneric,
	q("Design a system to send notifications to millions of users when a friend posts an update. What components would you include?", "Technical", "System Design"),
	q("How would you instrument a new feature to understand whether it is successful? Which metrics would you track?", "Technical", "Product Sense"),
)

var allPools = []Pool{
	behavioralGeneric,
	techSweFaangIntern,
	techSweGeneric,
	techDsGeneric,
	techPmGeneric,
}

// Pools lists every pool in a stable order.
func Pools() []Pool {
	return slices.Clone(allPools)
}

// Lookup finds a pool by name.
func Lookup(name PoolName) (Pool, bool) {
	for _, p := range allPools {
		if p.name == name {
			return p, true
		}
	}
	return Pool{}, false
}
