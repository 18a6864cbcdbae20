// Package workflow holds the role model, the capability table and the status
// machines of projects, financial requests and recruitment posts.
//
// Status types keep their name unexported, so other packages cannot build new
// values: they get the declared variables, the Parse functions and the results of
// the transition functions. Status writes go through NextProjectStatus,
// NextFinancialStatus and RecruitmentRules.Next; assigning a declared variable
// straight to a model is not checked here.
package workflow
