package domain

// CharacterProfile is the structured four-field analysis of a fictional
// character as produced by the upstream model. Each field is a natural
// language description; fields the input cannot support are marked
// "확인할 수 없음" by the model rather than omitted.
type CharacterProfile struct {
	OuterImage          string `json:"outer_image" jsonschema_description:"외적 이미지: 나이대, 성별, 첫인상, 목소리 특징, 키/체형 등. 텍스트에 명시되지 않은 정보는 '확인할 수 없음'으로 표기"`
	PersonalitySpectrum string `json:"personality_spectrum" jsonschema_description:"성격 스펙트럼: 겉으로 드러나는 성격, 내면의 성향, 대인관계 특성, 강점과 약점. 텍스트에 근거하여 분석"`
	NarrativeRole       string `json:"narrative_role" jsonschema_description:"서사적 역할: 이야기에서의 위치(주인공/조연/악역 등), 직업, 사회적 지위, 성장 가능성, 과거 트라우마 여부"`
	EmotionSpectrum     string `json:"emotion_spectrum" jsonschema_description:"감정 스펙트럼: 감정 표현 방식(절제/폭발), 중요한 연기 디테일(눈빛, 침묵, 호흡 등), 극단적 감정의 빈도와 특징"`
}
